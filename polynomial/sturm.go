// SPDX-License-Identifier: MIT

package polynomial

import "math"

// Divide performs polynomial long division p = d·quotient + remainder with
// remainder.Degree() < d.Degree().
// Returns ErrZeroDivisor if d is the zero polynomial.
func (p Polynomial) Divide(d Polynomial) (quotient, remainder Polynomial, err error) {
	if d.IsZero() {
		return Zero, Zero, polyErrorf(opDivide, ErrZeroDivisor)
	}
	dc := d.c()
	dDeg := d.Degree()
	dLead := dc[len(dc)-1]

	rem := p.c()
	r := make([]float64, len(rem))
	copy(r, rem)
	rDeg := p.Degree()
	if rDeg < dDeg {
		return Zero, p, nil
	}
	q := make([]float64, rDeg-dDeg+1)

	for rDeg >= dDeg {
		shift := rDeg - dDeg
		k := r[rDeg] / dLead
		q[shift] = k
		for i, v := range dc {
			r[i+shift] -= k * v
		}
		// the leading term is eliminated exactly, whatever rounding left behind
		r[rDeg] = 0
		rDeg--
		for rDeg >= 0 && r[rDeg] == 0 {
			rDeg--
		}
	}

	return fromCoeffs(q), fromCoeffs(r[:max(rDeg+1, 1)]), nil
}

// SturmSequence returns p, p', then successive negated remainders
// -rem(s[i-2], s[i-1]) until a remainder is exactly zero.
// The chain of a constant (or zero) polynomial stops at its derivative.
func (p Polynomial) SturmSequence() []Polynomial {
	seq := []Polynomial{p, p.Derivative()}
	for {
		prev, cur := seq[len(seq)-2], seq[len(seq)-1]
		if cur.IsZero() {
			break
		}
		_, rem, _ := prev.Divide(cur) // cur is non-zero
		rem = rem.Crop(cur.Degree() - 1)
		if rem.IsZero() {
			break
		}
		seq = append(seq, rem.Negate())
	}

	return seq
}

// signChanges counts sign alternations of seq at x, skipping zero values.
func signChanges(seq []Polynomial, x float64) int {
	count := 0
	prev := 0.0
	for _, s := range seq {
		v := s.Evaluate(x)
		if v == 0 || math.IsNaN(v) {
			continue
		}
		if prev != 0 && (v > 0) != (prev > 0) {
			count++
		}
		prev = v
	}

	return count
}

// RootCount returns the number of distinct real roots of p in (x1, x2].
// Bounds may be infinite. Returns ErrBadInterval unless x1 < x2.
// The zero polynomial reports 0 (it has no isolated roots).
func (p Polynomial) RootCount(x1, x2 float64) (int, error) {
	if !(x1 < x2) {
		return 0, polyErrorf(opRootCount, ErrBadInterval)
	}

	return countIn(p.SturmSequence(), x1, x2), nil
}

// TotalRootCount returns the number of distinct real roots of p.
func (p Polynomial) TotalRootCount() int {
	return countIn(p.SturmSequence(), math.Inf(-1), math.Inf(1))
}

func countIn(seq []Polynomial, x1, x2 float64) int {
	return signChanges(seq, x1) - signChanges(seq, x2)
}

// RootSeparators returns increasing points s1 < s2 < ... < sk = x2 (k = number
// of distinct roots in (x1, x2]) such that (x1, s1] and each (s(i-1), s(i)]
// contain exactly one root. No root value is computed; the points only
// bound roots, which is enough to read the sign of p between roots.
// Returns nil when there are no roots, ErrBadInterval unless x1 < x2 and
// both bounds are finite.
func (p Polynomial) RootSeparators(x1, x2 float64) ([]float64, error) {
	if !(x1 < x2) || math.IsInf(x1, 0) || math.IsInf(x2, 0) {
		return nil, polyErrorf(opSeparators, ErrBadInterval)
	}
	seq := p.SturmSequence()

	return separators(seq, x1, x2, nil), nil
}

// separators appends to out by bisection; recursion depth is bounded by the
// float64 resolution of [x1, x2].
func separators(seq []Polynomial, x1, x2 float64, out []float64) []float64 {
	count := countIn(seq, x1, x2)
	if count == 0 {
		return out
	}
	center := x1 + (x2-x1)/2
	if count == 1 || center <= x1 || center >= x2 {
		return append(out, x2)
	}
	left := countIn(seq, x1, center)
	right := countIn(seq, center, x2)
	switch {
	case left == 0:
		return separators(seq, center, x2, out)
	case right == 0:
		return separators(seq, x1, center, out)
	case left == 1 && right == 1:
		return append(out, center, x2)
	case left == 1:
		out = append(out, center)
		return separators(seq, center, x2, out)
	case right == 1:
		out = separators(seq, x1, center, out)
		return append(out, x2)
	default:
		out = separators(seq, x1, center, out)
		return separators(seq, center, x2, out)
	}
}
