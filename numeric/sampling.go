// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// Extrema summarizes the direction reversals of a sampled function.
type Extrema struct {
	Peaks   int // increasing then strictly decreasing
	Troughs int // decreasing then strictly increasing
	// Trend is the last observed direction: 1 rising, -1 falling, 0 when every
	// sample was equal. With no peaks or troughs it describes the whole interval.
	Trend int
}

// sampler walks x1 + i·(x2-x1)/n for i = 0..n and reports strict reversals.
type sampler struct {
	f      func(float64) float64
	x1, dx float64
	n      int
}

func newSampler(op string, f func(float64) float64, x1, x2 float64, n int) (sampler, error) {
	if n < 1 {
		return sampler{}, fmt.Errorf("numeric.%s: n=%d: %w", op, n, ErrSampleCount)
	}

	return sampler{f: f, x1: x1, dx: (x2 - x1) / float64(n), n: n}, nil
}

// walk calls visit(i, reversal) for i = 1..n, where reversal is +1 for a
// trough, -1 for a peak and 0 otherwise; it returns the final direction.
func (s sampler) walk(visit func(i, reversal int)) int {
	dir := 0
	last := s.f(s.x1)
	for i := 1; i <= s.n; i++ {
		y := s.f(s.x1 + float64(i)*s.dx)
		step := 0
		switch {
		case y > last:
			step = 1
		case y < last:
			step = -1
		}
		reversal := 0
		if step != 0 && dir != 0 && step != dir {
			reversal = step
		}
		visit(i, reversal)
		if step != 0 {
			dir = step
		}
		last = y
	}

	return dir
}

// PeaksAndTroughs samples f at n+1 uniform points on [x1, x2] and counts
// strict direction reversals.
func PeaksAndTroughs(f func(float64) float64, x1, x2 float64, n int) (Extrema, error) {
	s, err := newSampler("PeaksAndTroughs", f, x1, x2, n)
	if err != nil {
		return Extrema{}, err
	}
	var e Extrema
	e.Trend = s.walk(func(_, reversal int) {
		switch reversal {
		case -1:
			e.Peaks++
		case 1:
			e.Troughs++
		}
	})

	return e, nil
}

// LocalExtrema samples f like PeaksAndTroughs and returns the approximate
// location of each reversal: the midpoint of the step on which it was seen,
// x1 + (i - 0.5)·dx.
func LocalExtrema(f func(float64) float64, x1, x2 float64, n int) ([]float64, error) {
	s, err := newSampler("LocalExtrema", f, x1, x2, n)
	if err != nil {
		return nil, err
	}
	var out []float64
	s.walk(func(i, reversal int) {
		if reversal != 0 {
			out = append(out, s.x1+(float64(i)-0.5)*s.dx)
		}
	})

	return out, nil
}

// Max returns the largest of the n+1 uniform samples of f on [x1, x2].
// NaN samples are ignored; all-NaN yields -Inf.
func Max(f func(float64) float64, x1, x2 float64, n int) (float64, error) {
	s, err := newSampler("Max", f, x1, x2, n)
	if err != nil {
		return math.NaN(), err
	}
	best := math.Inf(-1)
	for i := 0; i <= s.n; i++ {
		if y := f(s.x1 + float64(i)*s.dx); y > best {
			best = y
		}
	}

	return best, nil
}
