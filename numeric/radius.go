// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
)

// startOffset is the relative gap between chord/2 and Newton's first guess.
const startOffset = 1e-12

// RadiusOptions tunes CircleRadius.
type RadiusOptions struct {
	// Tolerance bounds the error of the returned radius: absolute below 1,
	// relative above. As an absolute arc-length tolerance it also decides when
	// an arc counts as straight (arc ≈ chord) or as a half circle
	// (arc ≈ π·chord/2).
	Tolerance float64
	// MaxIterations bounds Newton's method.
	MaxIterations int
}

// RadiusOption configures RadiusOptions.
type RadiusOption func(*RadiusOptions)

// DefaultRadiusOptions returns Tolerance 1e-9 and MaxIterations 1000.
func DefaultRadiusOptions() RadiusOptions {
	return RadiusOptions{Tolerance: 1e-9, MaxIterations: 1000}
}

// WithTolerance sets RadiusOptions.Tolerance.
func WithTolerance(tol float64) RadiusOption {
	return func(o *RadiusOptions) { o.Tolerance = tol }
}

// WithMaxIterations sets the Newton iteration budget.
func WithMaxIterations(n int) RadiusOption {
	return func(o *RadiusOptions) { o.MaxIterations = n }
}

// CircleRadius returns the radius r of the circle on which a chord of length
// chord subtends an arc of length arc. Minor arcs satisfy
// arc = 2r·asin(chord/2r), major arcs arc = 2r·(π - asin(chord/2r)).
//
// Sentinels (nil error):
//   - NaN when either input is NaN.
//   - +Inf when arc ≈ chord (a straight run).
//   - chord/2 when arc ≈ π·chord/2 (a half circle).
//
// The result is negative when exactly one input is negative.
//
// Errors:
//   - ErrDegenerateArc for a zero or infinite length.
//   - ErrChordExceedsArc when |chord| > |arc| beyond the tolerance.
//   - ErrBadOption for Tolerance < 0 or MaxIterations <= 0.
func CircleRadius(arc, chord float64, opts ...RadiusOption) (float64, error) {
	o := DefaultRadiusOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Tolerance < 0 || o.MaxIterations <= 0 {
		return math.NaN(), fmt.Errorf("numeric.CircleRadius: tolerance %g, iterations %d: %w", o.Tolerance, o.MaxIterations, ErrBadOption)
	}
	if math.IsNaN(arc) || math.IsNaN(chord) {
		return math.NaN(), nil
	}
	sign := 1.0
	if (arc > 0) != (chord > 0) {
		sign = -1
	}
	arc, chord = math.Abs(arc), math.Abs(chord)
	if arc == 0 || chord == 0 || math.IsInf(arc, 0) || math.IsInf(chord, 0) {
		return math.NaN(), fmt.Errorf("numeric.CircleRadius: arc %g, chord %g: %w", arc, chord, ErrDegenerateArc)
	}

	half := chord / 2
	halfCircle := math.Pi * half
	switch {
	case math.Abs(arc-chord) <= o.Tolerance:
		return math.Inf(1), nil
	case math.Abs(arc-halfCircle) <= o.Tolerance:
		return sign * half, nil
	case chord > arc:
		return math.NaN(), fmt.Errorf("numeric.CircleRadius: chord %g > arc %g: %w", chord, arc, ErrChordExceedsArc)
	}

	f, df := minorArc(chord), minorArcDerivative(chord)
	if arc > halfCircle {
		f, df = majorArc(chord), majorArcDerivative(chord)
	}
	// start just above chord/2, where the tangent is steep but finite
	r := Newton(f, df, arc, half*(1+startOffset), o.Tolerance, o.MaxIterations)

	return sign * r, nil
}

// The arc functions clamp r to the chord's half length so a Newton step that
// undershoots stays on the real branch of asin.

func minorArc(c float64) func(float64) float64 {
	return func(r float64) float64 {
		r = math.Max(r, c/2)
		return 2 * r * math.Asin(c/(2*r))
	}
}

func majorArc(c float64) func(float64) float64 {
	return func(r float64) float64 {
		r = math.Max(r, c/2)
		return 2 * r * (math.Pi - math.Asin(c/(2*r)))
	}
}

func minorArcDerivative(c float64) func(float64) float64 {
	return func(r float64) float64 {
		r = math.Max(r, math.Nextafter(c/2, math.Inf(1)))
		return 2*math.Asin(c/(2*r)) - 2*c/math.Sqrt(4*r*r-c*c)
	}
}

func majorArcDerivative(c float64) func(float64) float64 {
	minor := minorArcDerivative(c)
	return func(r float64) float64 {
		return 2*math.Pi - minor(r)
	}
}
