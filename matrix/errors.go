// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag); tests match them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when input rows are empty or ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when elimination finds no non-zero pivot in a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags for uniform error wrapping.
const (
	opNewFromRows = "NewFromRows"
	opVector      = "NewVector"
	opIdentity    = "Identity"
	opAdd         = "Add"
	opNegate      = "Negate"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opAppend      = "AppendHorizontal"
	opEchelon     = "RowEchelon"
	opReduced     = "ReducedRowEchelon"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
