// SPDX-License-Identifier: MIT

package numeric

import "math"

// Newton solves f(x) = y starting at guess and returns the last iterate.
//
// Iteration stops when f(x) = y exactly, after maxIter steps, or once both
// the residual |f(x) - y| is within tol and the step is within
// tol·max(1, |x|). Where f is flat a small residual can still leave x far
// off, and where f is steep a small step can still leave the residual
// large, so both must hold. A step that reverses direction and lands within
// that bound of the guess two steps back also stops it (the method is
// cycling).
func Newton(f, df func(float64) float64, y, guess, tol float64, maxIter int) float64 {
	var prev [2]float64
	var prevStep float64
	x := guess
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		if fx == y {
			break
		}
		step := (fx - y) / df(x)
		x -= step
		lim := tol * math.Max(1, math.Abs(x))
		if math.Abs(step) <= lim && math.Abs(fx-y) <= tol {
			break
		}
		if i >= 2 && step*prevStep < 0 && math.Abs(x-prev[0]) <= lim {
			break
		}
		prev[0], prev[1] = prev[1], x
		prevStep = step
	}

	return x
}
