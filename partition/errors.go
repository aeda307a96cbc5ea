// SPDX-License-Identifier: MIT
// Package: strpart/partition
//
// errors.go — sentinel errors for the partition package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Call sites attach context with %w, never by editing the sentinel text.
//   • Generation never panics on caller input.

package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a minimum part size ≤ 0 or a negative length.
// Every other input (including length 0 and length < min) is valid.
var ErrInvalidArgument = errors.New("partition: invalid argument")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (e.g. WithMaxParts(-1)).
var ErrOptionViolation = errors.New("partition: invalid option value")

// ErrCountOverflow indicates that Count's result does not fit in an int.
var ErrCountOverflow = errors.New("partition: count overflows int")

// ErrCountTooLarge indicates that Count would need more table rows than
// maxCountRows to reach its answer.
var ErrCountTooLarge = errors.New("partition: length too large to count")

// validate checks the (length, minPart) preconditions shared by Generate and Count.
func validate(length, minPart int) error {
	if minPart <= 0 {
		return fmt.Errorf("%w: min must be positive (got %d)", ErrInvalidArgument, minPart)
	}
	if length < 0 {
		return fmt.Errorf("%w: length must be non-negative (got %d)", ErrInvalidArgument, length)
	}

	return nil
}
