package partition

import (
	"fmt"
	"math"
)

// maxCountRows bounds the DP table Count may grow (8 MiB of ints).
const maxCountRows = 1 << 20

// Count returns len(Generate(length, minPart)) without enumerating anything.
//
// Lengths below 2·minPart have exactly one partition. For n = 2·minPart+i
// the recurrence Generate follows is
//
//	c[n] = 1 + Σ_{r=minPart}^{n−minPart} c[r]
//
// where the terms r < 2·minPart are each 1 and the rest are read from a
// running prefix sum, so only the rows in [2·minPart, length] are stored.
//
// Errors:
//   - ErrInvalidArgument — minPart ≤ 0 or length < 0.
//   - ErrCountOverflow   — the count no longer fits in an int.
//   - ErrCountTooLarge   — more than maxCountRows rows would be needed.
//
// Complexity: O(length − 2·minPart) time and memory.
func Count(length, minPart int) (int, error) {
	if err := validate(length, minPart); err != nil {
		return 0, err
	}
	if minPart > length/2 {
		return 1, nil // only the whole length
	}

	rows := length - 2*minPart + 1 // 2*minPart ≤ length, no overflow
	if rows > maxCountRows {
		return 0, fmt.Errorf("%w: %d rows needed for length %d, min %d (limit %d)",
			ErrCountTooLarge, rows, length, minPart, maxCountRows)
	}

	// prefix[k] = Σ c[2·minPart+j] for j < k.
	prefix := make([]int, 1, rows+1)
	last := 0
	for i := 0; i < rows; i++ {
		// whole length plus the single-part tails shorter than 2·minPart
		total := 1 + min(i, minPart-1) + 1
		if i >= minPart {
			var ok bool
			if total, ok = addInt(total, prefix[i-minPart+1]); !ok {
				return 0, ErrCountOverflow
			}
		}
		sum, ok := addInt(prefix[i], total)
		if !ok && i+1 < rows {
			return 0, ErrCountOverflow
		}
		prefix = append(prefix, sum)
		last = total
	}

	return last, nil
}

// addInt returns a+b for non-negative operands and false on overflow.
func addInt(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}

	return a + b, true
}
