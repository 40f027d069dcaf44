// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination, inverse and determinant.
//
// Numeric policy:
//   - Partial pivoting picks the largest |value| in the column (lowest row on ties).
//   - A pivot is "zero" only when it is exactly ZeroPivot; no epsilon is applied,
//     so an under-determined normal-equation system surfaces as ErrSingular
//     whenever elimination cancels exactly.

package matrix

import "math"

// ZeroPivot is the sentinel for detecting a missing pivot during elimination.
const ZeroPivot = 0.0

// RowEchelon returns the row echelon form of m computed with partial pivoting.
//
// Implementation:
//   - Stage 1: copy m into scratch storage.
//   - Stage 2: for each column, select the largest-magnitude pivot at or below
//     the current pivot row, swap it up and eliminate the entries below it.
//   - Columns without a non-zero pivot are skipped.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c).
func RowEchelon(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEchelon, err)
	}
	work := d.clone()
	work.forwardEliminate()

	return work, nil
}

// ReducedRowEchelon returns the reduced row echelon form of m: every pivot
// is 1 and is the only non-zero entry of its column.
func ReducedRowEchelon(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduced, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReduced, err)
	}
	work := d.clone()
	pivots := work.forwardEliminate()
	work.backEliminate(pivots)

	return work, nil
}

// IsRowEchelon reports whether m is in row echelon form: each row's leading
// non-zero entry lies strictly right of the previous row's, and all-zero rows
// come last. A nil matrix is not in echelon form.
func IsRowEchelon(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}
	d, err := toDense(m)
	if err != nil {
		return false
	}
	prevLead := -1
	for i := 0; i < d.r; i++ {
		lead := d.c // all-zero row
		for j := 0; j < d.c; j++ {
			if d.at(i, j) != 0 {
				lead = j
				break
			}
		}
		if lead == d.c {
			prevLead = d.c
			continue
		}
		if lead <= prevLead {
			return false
		}
		prevLead = lead
	}

	return true
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination on the augmented matrix
// [m | I], keeping the right half once the left half is reduced to I.
//
// Implementation:
//   - Stage 1: validate square shape; build [m | I].
//   - Stage 2: forward elimination with partial pivoting; every one of the
//     first n columns must yield a non-zero pivot, otherwise ErrSingular.
//   - Stage 3: back elimination to reduced form; drop the first n columns.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "Inverse").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	id, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := AppendHorizontal(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	pivots := aug.forwardEliminate()
	for i := 0; i < n; i++ {
		if i >= len(pivots) || pivots[i] != i {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
	}
	aug.backEliminate(pivots)

	out := newDense(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug.data[i*aug.c+n:(i+1)*aug.c])
	}

	return out, nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Determinant").
//
// Complexity:
//   - Time O(n!); intended for the small systems produced by curve fitting.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return math.NaN(), matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return math.NaN(), matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(d), nil
}

func cofactorDet(d *Dense) float64 {
	switch d.r {
	case 1:
		return d.data[0]
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}
	det := 0.0
	sign := 1.0
	for j := 0; j < d.c; j++ {
		if a := d.at(0, j); a != 0 {
			det += sign * a * cofactorDet(d.minor(0, j))
		}
		sign = -sign
	}

	return det
}

// minor returns m without row ri and column cj.
func (m *Dense) minor(ri, cj int) *Dense {
	out := newDense(m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == ri {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == cj {
				continue
			}
			out.data[k] = m.at(i, j)
			k++
		}
	}

	return out
}

// forwardEliminate reduces m in place to row echelon form and returns the
// pivot column of each pivot row, in row order.
func (m *Dense) forwardEliminate() []int {
	var pivots []int
	row := 0
	for col := 0; col < m.c && row < m.r; col++ {
		best := row
		for i := row + 1; i < m.r; i++ {
			if math.Abs(m.at(i, col)) > math.Abs(m.at(best, col)) {
				best = i
			}
		}
		if m.at(best, col) == ZeroPivot {
			continue
		}
		m.swapRows(row, best)
		p := m.at(row, col)
		for i := row + 1; i < m.r; i++ {
			f := m.at(i, col) / p
			if f == 0 {
				continue
			}
			m.data[i*m.c+col] = 0
			for j := col + 1; j < m.c; j++ {
				m.data[i*m.c+j] -= f * m.at(row, j)
			}
		}
		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// backEliminate turns a row echelon form with the given pivots into reduced form.
func (m *Dense) backEliminate(pivots []int) {
	for row := len(pivots) - 1; row >= 0; row-- {
		col := pivots[row]
		p := m.at(row, col)
		for j := col; j < m.c; j++ {
			m.data[row*m.c+j] /= p
		}
		m.data[row*m.c+col] = 1
		for i := 0; i < row; i++ {
			f := m.at(i, col)
			if f == 0 {
				continue
			}
			for j := col; j < m.c; j++ {
				m.data[i*m.c+j] -= f * m.at(row, j)
			}
			m.data[i*m.c+col] = 0
		}
	}
}

func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
