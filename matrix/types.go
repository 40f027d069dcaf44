// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read-only view shared by every kernel in this package.
// Implementations must be safe to read concurrently.
type Matrix interface {
	// Rows returns the number of rows (> 0).
	Rows() int
	// Cols returns the number of columns (> 0).
	Cols() int
	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)
}
