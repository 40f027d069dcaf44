// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"slices"
)

// maxNudges bounds how many times SignChanges steps past a near-root point.
const maxNudges = 64

// defaultEpsDivisor sets the default evaluation threshold to (x2-x1)/1e9.
const defaultEpsDivisor = 1e9

// Rational is the ratio num/den of two polynomials. No cancellation is
// performed. When nonNegDen is set the denominator is known to be >= 0
// everywhere (a perfect square from the quotient rule).
type Rational struct {
	num, den  Polynomial
	nonNegDen bool
}

// NewRational returns num/den.
func NewRational(num, den Polynomial) Rational {
	return Rational{num: num, den: den}
}

// Numerator returns the numerator polynomial.
func (r Rational) Numerator() Polynomial { return r.num }

// Denominator returns the denominator polynomial.
func (r Rational) Denominator() Polynomial { return r.den }

// NonNegativeDenominator reports whether the denominator is known to be
// non-negative everywhere.
func (r Rational) NonNegativeDenominator() bool { return r.nonNegDen }

// Evaluate returns num(x)/den(x); poles give ±Inf or NaN.
func (r Rational) Evaluate(x float64) float64 {
	return r.num.Evaluate(x) / r.den.Evaluate(x)
}

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	return Rational{
		num: r.num.Mul(s.den).Add(s.num.Mul(r.den)),
		den: r.den.Mul(s.den),
	}
}

// Negate returns -r, keeping the denominator flag.
func (r Rational) Negate() Rational {
	return Rational{num: r.num.Negate(), den: r.den, nonNegDen: r.nonNegDen}
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Negate())
}

// Mul returns r·s.
func (r Rational) Mul(s Rational) Rational {
	return Rational{num: r.num.Mul(s.num), den: r.den.Mul(s.den)}
}

// Reciprocal returns den/num.
func (r Rational) Reciprocal() Rational {
	return Rational{num: r.den, den: r.num}
}

// Div returns r/s.
func (r Rational) Div(s Rational) Rational {
	return r.Mul(s.Reciprocal())
}

// Derivative applies the quotient rule (n'd - nd')/d². The result's
// denominator is a square, so it is flagged non-negative.
func (r Rational) Derivative() Rational {
	return Rational{
		num:       r.num.Derivative().Mul(r.den).Sub(r.num.Mul(r.den.Derivative())),
		den:       r.den.Mul(r.den),
		nonNegDen: true,
	}
}

// SignChanges is SignChangesEps with eps = (x2-x1)/1e9.
func (r Rational) SignChanges(x1, x2 float64) ([]float64, error) {
	return r.SignChangesEps(x1, x2, (x2-x1)/defaultEpsDivisor)
}

// SignChangesEps returns, in increasing order, the locations in (x1, x2]
// where r changes sign.
//
// With a non-negative denominator the numerator's root separators are
// returned directly. Otherwise the candidate points are the numerator's
// separators plus x2, refined by the denominator's separators (poles)
// within each numerator-bounded sub-interval and by the separators of
// num·den. The sign is read at x1 and
// at each candidate; a point whose numerator or denominator magnitude is
// below eps is nudged forward by eps until the sign is well defined.
//
// A zero numerator or denominator yields no sign changes.
func (r Rational) SignChangesEps(x1, x2, eps float64) ([]float64, error) {
	if !(x1 < x2) || math.IsInf(x1, 0) || math.IsInf(x2, 0) {
		return nil, polyErrorf(opSignChange, ErrBadInterval)
	}
	if r.num.IsZero() || r.den.IsZero() {
		return nil, nil
	}
	if r.nonNegDen {
		return r.num.RootSeparators(x1, x2)
	}

	numSeq := r.num.SturmSequence()
	denSeq := r.den.SturmSequence()

	bounds := append(separators(numSeq, x1, x2, nil), x2)
	bounds = sortUnique(bounds)

	var candidates []float64
	lo := x1
	for _, hi := range bounds {
		if hi > lo {
			candidates = separators(denSeq, lo, hi, candidates)
		}
		candidates = append(candidates, hi)
		lo = hi
	}
	// a numerator root and a pole can share one sub-interval; the product's
	// separators put a point between them
	candidates = separators(r.num.Mul(r.den).SturmSequence(), x1, x2, candidates)
	candidates = sortUnique(candidates)

	var changes []float64
	_, lastPositive := r.signAt(x1, eps)
	for _, x := range candidates {
		at, positive := r.signAt(x, eps)
		if positive != lastPositive {
			lastPositive = positive
			changes = append(changes, at)
		}
	}

	return changes, nil
}

// signAt evaluates the sign of r at x, stepping forward while either part
// is within eps of zero. It returns the point actually evaluated.
func (r Rational) signAt(x, eps float64) (float64, bool) {
	n, d := r.num.Evaluate(x), r.den.Evaluate(x)
	for i := 0; i < maxNudges && (math.Abs(n) < eps || math.Abs(d) < eps); i++ {
		x += eps
		n, d = r.num.Evaluate(x), r.den.Evaluate(x)
	}

	return x, sign(n)*sign(d) > 0
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func sortUnique(xs []float64) []float64 {
	slices.Sort(xs)

	return slices.Compact(xs)
}

// String renders r as "(num) / (den)".
func (r Rational) String() string {
	return "(" + r.num.String() + ") / (" + r.den.String() + ")"
}
