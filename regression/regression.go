// SPDX-License-Identifier: MIT

// Package regression fits least-squares polynomials to (x, y) samples by
// solving the normal equations XᵀXβ = Xᵀy with the matrix package.
//
// A fit with fewer distinct x samples than degree+1 has a singular normal
// matrix; Fit counts the distinct samples up front and reports that as
// matrix.ErrSingular instead of returning a meaningless curve. Callers that want a quality floor read R2 and refit
// at a higher degree.
package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/strokegraph/matrix"
	"github.com/katalvlaran/strokegraph/polynomial"
)

var (
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("regression: x and y lengths differ")

	// ErrNoData is returned for an empty sample set.
	ErrNoData = errors.New("regression: no samples")

	// ErrNegativeDegree is returned for degree < 0.
	ErrNegativeDegree = errors.New("regression: negative degree")
)

// Regression is an immutable least-squares polynomial fit.
type Regression struct {
	poly   polynomial.Polynomial
	degree int
	ssRes  float64
	ssTot  float64
}

// Fit returns the degree-d least-squares polynomial through (x[i], y[i]).
//
// Errors:
//   - ErrLengthMismatch, ErrNoData, ErrNegativeDegree for bad input.
//   - matrix.ErrSingular for fewer than degree+1 distinct x values, or when
//     XᵀX cannot be inverted.
//   - matrix.ErrNaNInf / polynomial.ErrNonFinite for non-finite samples or results.
func Fit(x, y []float64, degree int) (*Regression, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression.Fit: %d x vs %d y: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("regression.Fit: %w", ErrNoData)
	}
	if degree < 0 {
		return nil, fmt.Errorf("regression.Fit: degree %d: %w", degree, ErrNegativeDegree)
	}

	if n := distinct(x); n < degree+1 {
		return nil, fmt.Errorf("regression.Fit: degree %d on %d distinct x: %w", degree, n, matrix.ErrSingular)
	}

	beta, err := solveNormal(x, y, degree)
	if err != nil {
		return nil, fmt.Errorf("regression.Fit: degree %d on %d samples: %w", degree, len(x), err)
	}
	p, err := polynomial.New(beta...)
	if err != nil {
		return nil, fmt.Errorf("regression.Fit: %w", err)
	}

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	r := &Regression{poly: p, degree: degree}
	for i, xi := range x {
		d := y[i] - p.Evaluate(xi)
		r.ssRes += d * d
		m := y[i] - mean
		r.ssTot += m * m
	}

	return r, nil
}

// distinct counts the distinct values of x. Elimination only reports an
// exactly zero pivot, and rounding rarely leaves one for irrational x, so an
// under-determined fit is caught here instead.
func distinct(x []float64) int {
	s := slices.Clone(x)
	slices.Sort(s)
	n := 0
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			n++
		}
	}

	return n
}

// solveNormal returns β = (XᵀX)⁻¹Xᵀy for the Vandermonde design matrix X.
func solveNormal(x, y []float64, degree int) ([]float64, error) {
	rows := make([][]float64, len(x))
	for i, xi := range x {
		row := make([]float64, degree+1)
		row[0] = 1
		for j := 1; j <= degree; j++ {
			row[j] = row[j-1] * xi
		}
		rows[i] = row
	}
	design, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, err
	}
	target, err := matrix.NewColumn(y)
	if err != nil {
		return nil, err
	}

	xt, err := matrix.Transpose(design)
	if err != nil {
		return nil, err
	}
	xtx, err := matrix.Mul(xt, design)
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(xtx)
	if err != nil {
		return nil, err
	}
	xty, err := matrix.Mul(xt, target)
	if err != nil {
		return nil, err
	}
	beta, err := matrix.Mul(inv, xty)
	if err != nil {
		return nil, err
	}

	return beta.Column(0)
}

// Polynomial returns the fitted polynomial.
func (r *Regression) Polynomial() polynomial.Polynomial { return r.poly }

// Degree returns the requested fit degree (the polynomial may trim lower).
func (r *Regression) Degree() int { return r.degree }

// Evaluate returns the fitted value at x.
func (r *Regression) Evaluate(x float64) float64 { return r.poly.Evaluate(x) }

// SSResidual returns the residual sum of squares.
func (r *Regression) SSResidual() float64 { return r.ssRes }

// SSTotal returns the total sum of squares about the mean of y.
func (r *Regression) SSTotal() float64 { return r.ssTot }

// R2 returns the coefficient of determination 1 - SSres/SStot.
// Constant samples give NaN when the fit is exact (0/0).
func (r *Regression) R2() float64 {
	if r.ssTot == 0 {
		if r.ssRes == 0 {
			return math.NaN()
		}

		return math.Inf(-1)
	}

	return 1 - r.ssRes/r.ssTot
}

// String renders the fitted polynomial with its R².
func (r *Regression) String() string {
	return fmt.Sprintf("%v (R²=%.6g)", r.poly, r.R2())
}
