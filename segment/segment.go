package segment

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/strpart/partition"
)

// Split cuts s left to right, one piece per part of p.
//
// The i-th piece holds min(p[i], remaining) units, so a partition that sums
// past the end of s yields a short piece and then empty strings; it never
// fails on out-of-range sizes. When p sums to exactly the measured length of
// s, every piece has its full size and Join reconstructs s.
//
// Returns ErrInvalidArgument if any part is negative.
func Split(s string, p partition.Partition, opts ...Option) (Segmentation, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	for i, part := range p {
		if part < 0 {
			return nil, fmt.Errorf("%w: part %d is negative (%d)", ErrInvalidArgument, i, part)
		}
	}

	if o.Unit == Runes {
		return splitRunes(s, p), nil
	}

	return splitBytes(s, p), nil
}

// splitBytes slices s by byte offsets.
func splitBytes(s string, p partition.Partition) Segmentation {
	out := make(Segmentation, 0, len(p))
	rest := s
	for _, part := range p {
		n := min(part, len(rest))
		out = append(out, rest[:n])
		rest = rest[n:]
	}

	return out
}

// splitRunes slices s by code point, walking byte offsets so pieces share
// the original backing string.
func splitRunes(s string, p partition.Partition) Segmentation {
	out := make(Segmentation, 0, len(p))
	rest := s
	for _, part := range p {
		end := 0
		for k := 0; k < part && end < len(rest); k++ {
			_, size := utf8.DecodeRuneInString(rest[end:])
			end += size
		}
		out = append(out, rest[:end])
		rest = rest[end:]
	}

	return out
}

// Process returns every segmentation of s into pieces of at least minPart
// units, in the order partition.Generate emits the partitions of its length.
//
// The empty string yields exactly one segmentation holding the empty string.
//
// Errors:
//   - ErrInvalidArgument — minPart ≤ 0.
//   - partition.ErrOptionViolation — a bad Option or forwarded partition.Option.
func Process(s string, minPart int, opts ...Option) ([]Segmentation, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	length := len(s)
	if o.Unit == Runes {
		length = utf8.RuneCountInString(s)
	}

	set, err := partition.Generate(length, minPart, o.Partition...)
	if err != nil {
		return nil, fmt.Errorf("segment: process string of len %d: %w", length, err)
	}

	out := make([]Segmentation, 0, len(set))
	for _, p := range set {
		var seg Segmentation
		if o.Unit == Runes {
			seg = splitRunes(s, p)
		} else {
			seg = splitBytes(s, p)
		}
		out = append(out, seg)
	}

	return out, nil
}
