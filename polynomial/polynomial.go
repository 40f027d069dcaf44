// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// Polynomial is an immutable real polynomial stored as ascending-power
// coefficients in canonical trimmed form. The zero value is the zero
// polynomial.
type Polynomial struct {
	coeffs []float64 // coeffs[i] multiplies x^i; never has a trailing zero beyond index 0
}

var zeroCoeffs = []float64{0}

// Zero is the zero polynomial (degree -1).
var Zero = Polynomial{coeffs: zeroCoeffs}

// New builds a polynomial from ascending-power coefficients:
// New(c0, c1, c2) = c0 + c1·x + c2·x².
// Trailing zero coefficients are trimmed; no coefficients yields Zero.
// Returns ErrNonFinite if any coefficient is NaN or ±Inf.
func New(coeffs ...float64) (Polynomial, error) {
	for _, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Zero, polyErrorf(opNew, ErrNonFinite)
		}
	}
	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)

	return fromCoeffs(cp), nil
}

// MustNew is like New but panics on non-finite coefficients.
// Intended for constants and tests.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// fromCoeffs takes ownership of c and trims it.
func fromCoeffs(c []float64) Polynomial {
	n := len(c)
	for n > 1 && c[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Zero
	}

	return Polynomial{coeffs: c[:n]}
}

func (p Polynomial) c() []float64 {
	if len(p.coeffs) == 0 {
		return zeroCoeffs
	}

	return p.coeffs
}

// Degree returns the polynomial degree; the zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	c := p.c()
	if len(c) == 1 && c[0] == 0 {
		return -1
	}

	return len(c) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return p.Degree() == -1 }

// Coefficient returns the coefficient of x^i (0 beyond the degree or for i < 0).
func (p Polynomial) Coefficient(i int) float64 {
	c := p.c()
	if i < 0 || i >= len(c) {
		return 0
	}

	return c[i]
}

// Coefficients returns a copy of the ascending-power coefficients.
func (p Polynomial) Coefficients() []float64 {
	c := p.c()
	out := make([]float64, len(c))
	copy(out, c)

	return out
}

// Leading returns the coefficient of the highest power (0 for Zero).
func (p Polynomial) Leading() float64 {
	c := p.c()

	return c[len(c)-1]
}

// Evaluate returns p(x). At x = ±Inf the sign of the leading term decides
// the result; constants evaluate to themselves.
func (p Polynomial) Evaluate(x float64) float64 {
	c := p.c()
	if math.IsNaN(x) {
		return math.NaN()
	}
	if math.IsInf(x, 0) {
		if len(c) == 1 {
			return c[0]
		}
		lead := math.Copysign(1, c[len(c)-1])
		if (len(c)-1)%2 == 1 {
			return x * lead // odd degree follows x
		}

		return math.Inf(1) * lead
	}

	// Horner
	y := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		y = y*x + c[i]
	}

	return y
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	a, b := p.c(), q.c()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]float64, len(a))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}

	return fromCoeffs(out)
}

// Negate returns -p.
func (p Polynomial) Negate() Polynomial {
	return p.Scale(-1)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Negate())
}

// Scale returns k·p.
func (p Polynomial) Scale(k float64) Polynomial {
	c := p.c()
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = v * k
	}

	return fromCoeffs(out)
}

// Mul returns p·q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero
	}
	a, b := p.c(), q.c()
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return fromCoeffs(out)
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	c := p.c()
	if len(c) == 1 {
		return Zero
	}
	out := make([]float64, len(c)-1)
	for i := 1; i < len(c); i++ {
		out[i-1] = c[i] * float64(i)
	}

	return fromCoeffs(out)
}

// AntiDerivative returns the antiderivative with zero constant term.
func (p Polynomial) AntiDerivative() Polynomial {
	if p.IsZero() {
		return Zero
	}
	c := p.c()
	out := make([]float64, len(c)+1)
	for i, v := range c {
		out[i+1] = v / float64(i+1)
	}

	return fromCoeffs(out)
}

// Average returns the mean value of p over [x1, x2].
// Returns ErrBadInterval unless x1 < x2.
func (p Polynomial) Average(x1, x2 float64) (float64, error) {
	if !(x1 < x2) || math.IsInf(x1, 0) || math.IsInf(x2, 0) {
		return math.NaN(), polyErrorf(opAverage, ErrBadInterval)
	}
	a := p.AntiDerivative()

	return (a.Evaluate(x2) - a.Evaluate(x1)) / (x2 - x1), nil
}

// Crop drops every term above the given degree. Crop(-1) yields Zero.
func (p Polynomial) Crop(degree int) Polynomial {
	if degree >= p.Degree() {
		return p
	}
	if degree < 0 {
		return Zero
	}
	out := make([]float64, degree+1)
	copy(out, p.c())

	return fromCoeffs(out)
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.c(), q.c()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders p highest power first, e.g. "x^3 - 6x^2 + 11x - 6".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	c := p.c()
	var sb strings.Builder
	for i := len(c) - 1; i >= 0; i-- {
		v := c[i]
		if v == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && v < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && v < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		abs := math.Abs(v)
		if abs != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
