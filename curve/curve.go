// SPDX-License-Identifier: MIT

// Package curve measures a planar curve given as a pair of polynomial fits
// x(t), y(t) against arc length t.
//
// The slope dy/dx is kept as a rational function of t (y′/x′), so its
// derivative and the sign changes of that derivative are exact polynomial
// questions answered with Sturm sequences. Curvature and tangent angle are
// evaluated pointwise.
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/strokegraph/numeric"
	"github.com/katalvlaran/strokegraph/polynomial"
	"github.com/katalvlaran/strokegraph/regression"
)

// ErrNilRegression is returned by NewFit when either axis fit is nil.
var ErrNilRegression = errors.New("curve: nil regression")

// Fit is a parametric curve built from one regression per axis.
type Fit struct {
	x, y       *regression.Regression
	slope      polynomial.Rational
	concavity  polynomial.Rational
	curvatureF func(float64) float64
}

// NewFit pairs the x(t) and y(t) regressions of one curve.
func NewFit(x, y *regression.Regression) (*Fit, error) {
	if x == nil || y == nil {
		return nil, ErrNilRegression
	}
	s := Slope(x.Polynomial(), y.Polynomial())

	return &Fit{
		x:          x,
		y:          y,
		slope:      s,
		concavity:  s.Derivative(),
		curvatureF: CurvatureFunc(x.Polynomial(), y.Polynomial()),
	}, nil
}

// FitSamples fits both axes of the samples (t[i], x[i], y[i]) at degree.
func FitSamples(t, x, y []float64, degree int) (*Fit, error) {
	rx, err := regression.Fit(t, x, degree)
	if err != nil {
		return nil, fmt.Errorf("curve: x axis: %w", err)
	}
	ry, err := regression.Fit(t, y, degree)
	if err != nil {
		return nil, fmt.Errorf("curve: y axis: %w", err)
	}

	return NewFit(rx, ry)
}

// X returns the x(t) regression.
func (f *Fit) X() *regression.Regression { return f.x }

// Y returns the y(t) regression.
func (f *Fit) Y() *regression.Regression { return f.y }

// MinR2 returns the smaller R² of the two axis fits.
func (f *Fit) MinR2() float64 { return math.Min(f.x.R2(), f.y.R2()) }

// Point returns (x(t), y(t)).
func (f *Fit) Point(t float64) (float64, float64) {
	return f.x.Evaluate(t), f.y.Evaluate(t)
}

// Slope returns dy/dx as y′(t)/x′(t).
func (f *Fit) Slope() polynomial.Rational { return f.slope }

// Concavity returns the t-derivative of Slope. Its denominator is a square.
func (f *Fit) Concavity() polynomial.Rational { return f.concavity }

// Curvature returns the signed curvature at t; NaN where the curve is stationary.
func (f *Fit) Curvature(t float64) float64 { return f.curvatureF(t) }

// Angle returns the direction of the tangent at t, atan2(y′, x′).
func (f *Fit) Angle(t float64) float64 {
	return math.Atan2(f.slope.Numerator().Evaluate(t), f.slope.Denominator().Evaluate(t))
}

// Inflections counts the sign changes of Concavity on [t1, t2].
func (f *Fit) Inflections(t1, t2 float64) (int, error) {
	pts, err := f.concavity.SignChanges(t1, t2)
	if err != nil {
		return 0, fmt.Errorf("curve: Inflections: %w", err)
	}

	return len(pts), nil
}

// Turns samples Curvature n times on [t1, t2] and counts its peaks and troughs.
func (f *Fit) Turns(t1, t2 float64, n int) (numeric.Extrema, error) {
	return numeric.PeaksAndTroughs(f.curvatureF, t1, t2, n)
}

// TurnPoints samples Curvature like Turns and returns where it reverses.
func (f *Fit) TurnPoints(t1, t2 float64, n int) ([]float64, error) {
	return numeric.LocalExtrema(f.curvatureF, t1, t2, n)
}

// Slope returns y′/x′ for the parametric curve (x(t), y(t)).
func Slope(x, y polynomial.Polynomial) polynomial.Rational {
	return polynomial.NewRational(y.Derivative(), x.Derivative())
}

// CurvatureFunc returns t ↦ (x′y″ - x″y′) / (x′² + y′²)^1.5.
func CurvatureFunc(x, y polynomial.Polynomial) func(float64) float64 {
	dx, dy := x.Derivative(), y.Derivative()
	ddx, ddy := dx.Derivative(), dy.Derivative()

	return func(t float64) float64 {
		x1, y1 := dx.Evaluate(t), dy.Evaluate(t)
		x2, y2 := ddx.Evaluate(t), ddy.Evaluate(t)

		return (x1*y2 - x2*y1) / math.Pow(x1*x1+y1*y1, 1.5)
	}
}
