package partition

import (
	"fmt"
)

// Partition is an ordered sequence of part sizes.
// Values returned by Generate are freshly allocated and owned by the caller.
type Partition []int

// Sum returns the total of all parts.
func (p Partition) Sum() int {
	total := 0
	for _, part := range p {
		total += part
	}

	return total
}

// Len returns the number of parts.
func (p Partition) Len() int { return len(p) }

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	if p == nil {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// String renders p as "[4 6]".
func (p Partition) String() string {
	return fmt.Sprint([]int(p))
}

// Set is the ordered list of partitions produced by one Generate call.
type Set []Partition

// Option configures Generate via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Generate is invoked.
type Option func(*Options)

// Options holds the tunables of a Generate call.
type Options struct {
	// Memo caches the tails of each remaining length for the duration
	// of a single call. Results are identical with or without it.
	Memo bool

	// MaxParts, if > 0, drops partitions with more than MaxParts parts.
	// A value of 0 means no limit.
	MaxParts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with memoisation off and no part limit.
func DefaultOptions() Options {
	return Options{
		Memo:     false,
		MaxParts: 0,
	}
}

// WithMemo toggles per-call memoisation of tails.
func WithMemo(enabled bool) Option {
	return func(o *Options) {
		o.Memo = enabled
	}
}

// WithMaxParts keeps only partitions of at most k parts.
//
//	k > 0:  limit to k parts
//	k == 0: explicit no limit
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxParts(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxParts cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxParts = k
	}
}
