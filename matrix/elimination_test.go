// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokegraph/matrix"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func requireMatrixInDelta(t *testing.T, want [][]float64, got *matrix.Dense, delta float64) {
	t.Helper()
	rows := got.ToRows()
	require.Len(t, rows, len(want))
	for i := range want {
		require.Len(t, rows[i], len(want[i]))
		for j := range want[i] {
			assert.InDelta(t, want[i][j], rows[i][j], delta, "(%d,%d)", i, j)
		}
	}
}

//--------------------------------------------------------------------------------
// Kernels
//--------------------------------------------------------------------------------

func TestMulTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	b := mustRows(t, [][]float64{{1, 0, 2}, {0, 1, 3}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 8}, {3, 4, 18}, {5, 6, 28}}, p.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, tr.ToRows())

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddNegateAppend(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5}, {6}})

	s, err := matrix.Add(a, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, s.ToRows())

	n, err := matrix.Negate(a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, n.ToRows())

	ab, err := matrix.AppendHorizontal(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, ab.ToRows())

	_, err = matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AppendHorizontal(a, mustRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

//--------------------------------------------------------------------------------
// Elimination
//--------------------------------------------------------------------------------

func TestRowEchelon(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 1}, {2, 4, 0}, {3, 1, 2}})
	assert.False(t, matrix.IsRowEchelon(m))

	ref, err := matrix.RowEchelon(m)
	require.NoError(t, err)
	assert.True(t, matrix.IsRowEchelon(ref))

	rref, err := matrix.ReducedRowEchelon(m)
	require.NoError(t, err)
	requireMatrixInDelta(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, rref, 1e-12)

	assert.True(t, matrix.IsRowEchelon(mustRows(t, [][]float64{{1, 2}, {0, 0}})))
	assert.False(t, matrix.IsRowEchelon(mustRows(t, [][]float64{{0, 0}, {1, 2}})))
	assert.False(t, matrix.IsRowEchelon(nil))
}

func TestInverse(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{"OneByOne", [][]float64{{4}}, [][]float64{{0.25}}},
		{"TwoByTwo", [][]float64{{4, 7}, {2, 6}}, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}},
		{"NeedsPivot", [][]float64{{0, 1}, {1, 0}}, [][]float64{{0, 1}, {1, 0}}},
		{"ThreeByThree", [][]float64{{2, 0, 0}, {0, 4, 0}, {0, 0, 8}}, [][]float64{{0.5, 0, 0}, {0, 0.25, 0}, {0, 0, 0.125}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv, err := matrix.Inverse(mustRows(t, tc.in))
			require.NoError(t, err)
			requireMatrixInDelta(t, tc.want, inv, 1e-12)
		})
	}
}

func TestInverseTimesSelfIsIdentity(t *testing.T) {
	m := mustRows(t, [][]float64{{3, 1, 2}, {1, 5, 1}, {2, 1, 4}})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)
	p, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	requireMatrixInDelta(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, p, 1e-12)
}

func TestInverseErrors(t *testing.T) {
	_, err := matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{0, 0}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"OneByOne", [][]float64{{-3}}, -3},
		{"TwoByTwo", [][]float64{{4, 7}, {2, 6}}, 10},
		{"ThreeByThree", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"Singular", [][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(mustRows(t, tc.in))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d, 1e-9)
		})
	}

	_, err := matrix.Determinant(mustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
