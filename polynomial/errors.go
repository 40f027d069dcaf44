// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite is returned when a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("polynomial: coefficient is NaN or Inf")

	// ErrZeroDivisor is returned when dividing by the zero polynomial.
	ErrZeroDivisor = errors.New("polynomial: division by zero polynomial")

	// ErrBadInterval is returned when an interval query has x2 <= x1,
	// or when a bound is NaN (or infinite where a finite bound is required).
	ErrBadInterval = errors.New("polynomial: invalid interval")
)

// Operation tags used in wrapped errors.
const (
	opNew        = "New"
	opDivide     = "Divide"
	opRootCount  = "RootCount"
	opSeparators = "RootSeparators"
	opAverage    = "Average"
	opSignChange = "SignChanges"
)

// polyErrorf tags err with the operation that produced it.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("polynomial.%s: %w", op, err)
}
