// Package bounds holds the single error kind raised by the samplers: a
// requested interval whose lower bound does not sit strictly below its upper
// bound.
package bounds

import (
	"cmp"
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("invalid range")

// Check fails unless min < max. NaN bounds never satisfy the check.
func Check[T cmp.Ordered](min, max T) error {
	if !(min < max) {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidRange, min, max)
	}
	return nil
}

// CheckInclusive fails unless min <= max.
func CheckInclusive[T cmp.Ordered](min, max T) error {
	if !(min <= max) {
		return fmt.Errorf("%w: min %v must not exceed max %v", ErrInvalidRange, min, max)
	}
	return nil
}

// Comparable is satisfied by wide integer types that order themselves.
type Comparable[T any] interface {
	Cmp(other T) int
}

// CheckCmp is Check for types ordered through a Cmp method.
func CheckCmp[T Comparable[T]](min, max T) error {
	if min.Cmp(max) >= 0 {
		return fmt.Errorf("%w: min %v must be less than max %v", ErrInvalidRange, min, max)
	}
	return nil
}
