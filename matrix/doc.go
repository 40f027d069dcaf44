// SPDX-License-Identifier: MIT

// Package matrix provides a small, immutable dense matrix type and the
// linear-algebra kernels needed for least-squares curve fitting.
//
// What:
//
//   - Dense: row-major immutable storage built from rows, a single row or
//     column, a zero shape, or the identity.
//   - Kernels: Mul, Transpose, Add, Negate, AppendHorizontal.
//   - Elimination: RowEchelon (partial pivoting), ReducedRowEchelon,
//     IsRowEchelon, Inverse (Gauss–Jordan on [A | I]) and Determinant
//     (cofactor expansion).
//
// Why:
//
//   - Normal equations XᵀXβ = Xᵀy are tiny (degree+1 square), so clarity and
//     explicit failure on singular systems matter more than speed.
//
// Errors (all matched with errors.Is):
//
//   - ErrInvalidDimensions: non-positive requested shape.
//   - ErrBadShape: empty or ragged input rows.
//   - ErrNaNInf: non-finite entry at construction.
//   - ErrOutOfRange: At/Row index outside the matrix.
//   - ErrDimensionMismatch: incompatible operand shapes.
//   - ErrNonSquare: Inverse/Determinant on a non-square matrix.
//   - ErrSingular: a column of the inverse has no non-zero pivot.
//   - ErrNilMatrix: a nil operand.
//
// Determinism:
//
//   - Fixed loop orders; pivot ties resolve to the lowest row index.
//
// Complexity:
//
//   - Mul O(n·m·p); Inverse O(n³); Determinant O(n!) (intended for n ≤ ~6).
package matrix
