package segment

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strpart/partition"
)

// ErrInvalidArgument is partition.ErrInvalidArgument, re-exported so that
// callers of this package need a single errors.Is check.
var ErrInvalidArgument = partition.ErrInvalidArgument

// Segmentation is an ordered list of substrings aligned with a partition.
type Segmentation []string

// Join concatenates the pieces back into one string.
func (s Segmentation) Join() string { return strings.Join(s, "") }

// Len returns the number of pieces.
func (s Segmentation) Len() int { return len(s) }

// Unit selects how string lengths and part sizes are measured.
type Unit int

const (
	// Bytes measures lengths in bytes.
	Bytes Unit = iota

	// Runes measures lengths in Unicode code points.
	Runes
)

// String returns "bytes" or "runes".
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Option configures Split and Process.
type Option func(*Options)

// Options holds the tunables of Split and Process.
type Options struct {
	// Unit is the measure used for the string length and part sizes.
	Unit Unit

	// Partition holds options forwarded to partition.Generate by Process.
	Partition []partition.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns byte-measured Options with no generator options.
func DefaultOptions() Options {
	return Options{Unit: Bytes}
}

// WithUnit selects byte or rune measurement. An unknown Unit is reported
// as partition.ErrOptionViolation when the call runs.
func WithUnit(u Unit) Option {
	return func(o *Options) {
		if u != Bytes && u != Runes {
			o.err = fmt.Errorf("%w: unknown unit %s", partition.ErrOptionViolation, u)
			return
		}
		o.Unit = u
	}
}

// WithPartitionOptions forwards options (memoisation, part limit) to the
// generator used by Process.
func WithPartitionOptions(opts ...partition.Option) Option {
	return func(o *Options) {
		o.Partition = append(o.Partition, opts...)
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
