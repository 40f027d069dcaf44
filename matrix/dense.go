// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep values immutable once constructed; kernels always allocate their result.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); NewFromRows: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxRow = "Row"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee positive shape.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewFromRows builds a matrix by deep-copying rows.
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row (ErrBadShape).
//   - Stage 2: reject ragged rows (ErrBadShape) and non-finite values (ErrNaNInf).
//   - Stage 3: copy row-major into a fresh buffer.
//
// Inputs:
//   - rows: rows[i][j] is the element at (i, j).
//
// Returns:
//   - *Dense: independent of the input slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	d := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opNewFromRows, denseErrorf(ctxAt, i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// NewColumn returns an n×1 column vector.
func NewColumn(v []float64) (*Dense, error) {
	return newVector(v, len(v), 1)
}

// NewRow returns a 1×n row vector.
func NewRow(v []float64) (*Dense, error) {
	return newVector(v, 1, len(v))
}

func newVector(v []float64, r, c int) (*Dense, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opVector, ErrBadShape)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, matrixErrorf(opVector, fmt.Errorf("element %d: %w", i, ErrNaNInf))
		}
	}
	d := newDense(r, c)
	copy(d.data, v)

	return d, nil
}

// Identity returns the n×n identity matrix; ErrInvalidDimensions if n <= 0.
func Identity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	d := newDense(n, n)
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j).
// Returns ErrOutOfRange (wrapped with coordinates) for invalid indices.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// at is the unchecked accessor for kernels that already validated bounds.
func (m *Dense) at(i, j int) float64 { return m.data[i*m.c+j] }

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxRow, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// ToRows returns a deep copy as a slice of rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.at(i, j), 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// toDense returns m itself when it is a *Dense, otherwise a copy read via At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d := newDense(m.Rows(), m.Cols())
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// clone returns an independent copy used as elimination scratch space.
func (m *Dense) clone() *Dense {
	out := newDense(m.r, m.c)
	copy(out.data, m.data)

	return out
}
