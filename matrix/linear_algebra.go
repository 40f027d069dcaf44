// SPDX-License-Identifier: MIT
// Package matrix - element-wise and product kernels.
//
// Every kernel validates operands, works on *Dense fast paths (other Matrix
// implementations are copied once through At) and allocates its result.

package matrix

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := newDense(da.r, da.c)
	for k := range out.data {
		out.data[k] = da.data[k] + db.data[k]
	}

	return out, nil
}

// Negate returns -m.
func Negate(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	out := newDense(d.r, d.c)
	for k, v := range d.data {
		out.data[k] = -v
	}

	return out, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: i-k-j loop order so the inner loop streams rows of b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := newDense(da.r, db.c)
	for i := 0; i < da.r; i++ {
		rowOut := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < da.c; k++ {
			aik := da.at(i, k)
			if aik == 0 {
				continue
			}
			rowB := db.data[k*db.c : (k+1)*db.c]
			for j, bkj := range rowB {
				rowOut[j] += aik * bkj
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDense(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.at(i, j)
		}
	}

	return out, nil
}

// AppendHorizontal returns [a | b]: the columns of b placed to the right
// of the columns of a.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch if the row counts differ.
func AppendHorizontal(a, b Matrix) (*Dense, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAppend, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAppend, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAppend, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAppend, err)
	}
	out := newDense(da.r, da.c+db.c)
	for i := 0; i < da.r; i++ {
		copy(out.data[i*out.c:], da.data[i*da.c:(i+1)*da.c])
		copy(out.data[i*out.c+da.c:], db.data[i*db.c:(i+1)*db.c])
	}

	return out, nil
}
