// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrDegenerateArc is returned for zero or infinite arc/chord lengths.
	ErrDegenerateArc = errors.New("numeric: degenerate arc")

	// ErrChordExceedsArc is returned when the chord is longer than the arc.
	ErrChordExceedsArc = errors.New("numeric: chord length exceeds arc length")

	// ErrBadOption is returned for a negative tolerance or a non-positive
	// iteration budget.
	ErrBadOption = errors.New("numeric: invalid option")

	// ErrSampleCount is returned when fewer than one sampling step is requested.
	ErrSampleCount = errors.New("numeric: sample count must be >= 1")
)
