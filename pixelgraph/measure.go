// SPDX-License-Identifier: MIT

package pixelgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strokegraph/curve"
	"github.com/katalvlaran/strokegraph/numeric"
)

// End-angle sample positions as fractions of the segment distance.
const (
	nearEnd = 0.025
	farEnd  = 0.975
)

// Mean returns the mean of the points projected on the unit vector at
// angle direction (radians from +x toward +y).
func Mean(pts []Point, direction float64) float64 {
	dx, dy := math.Cos(direction), math.Sin(direction)
	sum := 0.0
	for _, p := range pts {
		sum += dx*p.X + dy*p.Y
	}

	return sum / float64(len(pts))
}

// Deviation returns the sample standard deviation (n-1) of the projections.
// Fewer than two points give NaN.
func Deviation(pts []Point, direction float64) float64 {
	mean := Mean(pts, direction)
	dx, dy := math.Cos(direction), math.Sin(direction)
	v := 0.0
	for _, p := range pts {
		d := dx*p.X + dy*p.Y - mean
		v += d * d
	}

	return math.Sqrt(v / float64(len(pts)-1))
}

// Skewness returns the sample skewness of the projections.
func Skewness(pts []Point, direction float64) float64 {
	mean := Mean(pts, direction)
	dx, dy := math.Cos(direction), math.Sin(direction)
	sum := 0.0
	for _, p := range pts {
		d := dx*p.X + dy*p.Y - mean
		sum += d * d * d
	}

	return sum / (float64(len(pts)-1) * math.Pow(Deviation(pts, direction), 3))
}

// distinctPoints drops the repeated start of a ring's closed walk.
func (s Segment) distinctPoints() []Point {
	pts := s.Points()
	if s.IsLoop() && len(pts) > 1 {
		pts = pts[:len(pts)-1]
	}

	return pts
}

// Mean is the package Mean over the segment's nodes.
func (s Segment) Mean(direction float64) float64 { return Mean(s.distinctPoints(), direction) }

// Deviation is the package Deviation over the segment's nodes.
func (s Segment) Deviation(direction float64) float64 {
	return Deviation(s.distinctPoints(), direction)
}

// Skewness is the package Skewness over the segment's nodes.
func (s Segment) Skewness(direction float64) float64 {
	return Skewness(s.distinctPoints(), direction)
}

// Bounds returns the bounding box of the segment's nodes.
func (s Segment) Bounds() Rect { return bounds(s.Points()) }

// Chord returns the straight-line distance between the two ends.
func (s Segment) Chord() float64 { return s.g.dist(s.end1, s.end2) }

// TurningCurvature sums the signed heading change between consecutive
// steps. Headings come from atan and are undirected (mod π), so each change
// is wrapped to [-π/2, π/2). A straight run scores 0.
//
// This departs from the usual 2π wrap of heading changes, and values differ
// from scores tuned against it: with atan headings a 2π wrap keeps the π
// jumps between steps, so a closed ring sums to 0 instead of its 7π/4 of
// turning.
func (s Segment) TurningCurvature() float64 {
	pts := s.Points()
	total := 0.0
	prev := math.NaN()
	for i := 1; i < len(pts); i++ {
		a := math.Atan((pts[i].Y - pts[i-1].Y) / (pts[i].X - pts[i-1].X))
		if !math.IsNaN(prev) {
			d := math.Mod(math.Mod(a-prev+math.Pi/2, math.Pi)+math.Pi, math.Pi) - math.Pi/2
			total += d
		}
		prev = a
	}

	return total
}

// ChordCurvature weights TurningCurvature by log(1 + Distance/Chord).
func (s Segment) ChordCurvature() float64 {
	return s.TurningCurvature() * math.Log(1+s.distance/s.Chord())
}

// CircularCurvature returns Distance divided by the radius of the circle
// through both ends with that arc length: the angle the segment subtends
// if it were a circular arc. It is 0 for a straight segment and NaN when no
// such circle exists (a ring, a single node).
func (s Segment) CircularCurvature() float64 {
	r, err := numeric.CircleRadius(s.distance, s.Chord())
	if err != nil {
		return math.NaN()
	}

	return s.distance / r
}

// arcSamples returns the cumulative distance and coordinates of each node
// whose distance lies in [tMin, tMax].
func (s Segment) arcSamples(tMin, tMax float64) (ts, xs, ys []float64) {
	t := 0.0
	pts := s.Points()
	for i, p := range pts {
		if i > 0 {
			t += p.Dist(pts[i-1])
		}
		if t > tMax {
			break
		}
		if t >= tMin {
			ts = append(ts, t)
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	return ts, xs, ys
}

// Fit regresses x and y against arc length over the whole segment.
func (s Segment) Fit(degree int) (*curve.Fit, error) {
	return s.FitWithin(degree, math.Inf(-1), math.Inf(1))
}

// FitWithin regresses x and y against arc length using only the nodes whose
// distance from End1 lies in [tMin, tMax].
func (s Segment) FitWithin(degree int, tMin, tMax float64) (*curve.Fit, error) {
	if math.IsNaN(tMin) || math.IsNaN(tMax) || tMin > tMax {
		return nil, fmt.Errorf("pixelgraph: FitWithin [%g, %g]: %w", tMin, tMax, ErrBadRange)
	}
	ts, xs, ys := s.arcSamples(tMin, tMax)
	f, err := curve.FitSamples(ts, xs, ys, degree)
	if err != nil {
		return nil, fmt.Errorf("pixelgraph: FitWithin degree %d: %w", degree, err)
	}

	return f, nil
}

// FitWithQuality fits at degree and raises the degree until both axes reach
// R² ≥ minR2 or maxDegree is reached. The last successful fit is returned;
// an error is returned only when no degree could be fitted.
func (s Segment) FitWithQuality(degree int, minR2 float64, maxDegree int) (*curve.Fit, error) {
	best, err := s.Fit(degree)
	if err != nil {
		return nil, err
	}
	for d := degree + 1; d <= maxDegree && best.MinR2() < minR2; d++ {
		f, err := s.Fit(d)
		if err != nil {
			break
		}
		best = f
	}

	return best, nil
}

// EndAngle returns the direction in which the fitted curve leaves the
// segment at one end, measured at 2.5% of the distance in from that end and
// pointing outward. atEnd1 selects End1, otherwise End2.
func (s Segment) EndAngle(f *curve.Fit, atEnd1 bool) float64 {
	x0, y0 := f.Point(0)
	origin := Point{X: x0, Y: y0}
	startsAtEnd1 := origin.Dist(s.g.nodes[s.end1].pos) < origin.Dist(s.g.nodes[s.end2].pos)

	num, den := f.Slope().Numerator(), f.Slope().Denominator()
	if startsAtEnd1 == atEnd1 {
		t := s.distance * nearEnd
		return math.Atan2(-num.Evaluate(t), -den.Evaluate(t))
	}
	t := s.distance * farEnd

	return math.Atan2(num.Evaluate(t), den.Evaluate(t))
}

// FreeEndAngle is EndAngle at End1 when End1 has degree 1, else at End2.
func (s Segment) FreeEndAngle(f *curve.Fit) float64 {
	return s.EndAngle(f, s.g.Degree(s.end1) == 1)
}
