// SPDX-License-Identifier: MIT

package pixelgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokegraph/pixelgraph"
	"github.com/katalvlaran/strokegraph/regression"
)

func onlySegment(t *testing.T, g *pixelgraph.Graph) pixelgraph.Segment {
	t.Helper()
	segs := g.Segments()
	require.Len(t, segs, 1)

	return segs[0]
}

func TestStatistics(t *testing.T) {
	pts := []pixelgraph.Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(6, 0)}
	assert.InDelta(t, 2.25, pixelgraph.Mean(pts, 0), 1e-12)
	assert.InDelta(t, 0, pixelgraph.Mean(pts, math.Pi/2), 1e-12)
	// variance = (5.0625+1.5625+0.0625+14.0625)/3
	assert.InDelta(t, math.Sqrt(20.75/3), pixelgraph.Deviation(pts, 0), 1e-12)
	assert.Greater(t, pixelgraph.Skewness(pts, 0), 0.0)
	assert.Less(t, pixelgraph.Skewness(pts, math.Pi), 0.0)

	assert.True(t, math.IsNaN(pixelgraph.Deviation(pts[:1], 0)))
}

func TestSegment_StraightLine(t *testing.T) {
	g := raster(t, "#####")
	s := onlySegment(t, g)

	assert.InDelta(t, 2, s.Mean(0), 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Deviation(0), 1e-12)
	assert.InDelta(t, 0, s.Skewness(0), 1e-12)
	assert.InDelta(t, 4, s.Chord(), 1e-12)
	assert.Zero(t, s.TurningCurvature())
	assert.Zero(t, s.ChordCurvature())
	assert.Zero(t, s.CircularCurvature())
	assert.Equal(t, pixelgraph.Rect{Min: pt(0, 0), Max: pt(4, 0)}, s.Bounds())

	f, err := s.Fit(1)
	require.NoError(t, err)
	assert.InDelta(t, 1, f.X().R2(), 1e-9)
	// leaving End1 heads toward -x, leaving End2 toward +x
	assert.InDelta(t, math.Pi, math.Abs(s.EndAngle(f, true)), 1e-9)
	assert.InDelta(t, 0, s.EndAngle(f, false), 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(s.FreeEndAngle(f)), 1e-9)
}

func TestSegment_QuarterCircle(t *testing.T) {
	const r, n = 20.0, 40
	g := pixelgraph.New()
	var pts []pixelgraph.Point
	for i := 0; i <= n; i++ {
		a := math.Pi / 2 * float64(i) / n
		pts = append(pts, pt(r*math.Cos(a), r*math.Sin(a)))
	}
	path(t, g, pts...)
	s := onlySegment(t, g)

	assert.InDelta(t, math.Pi/2, s.CircularCurvature(), 0.01)
	// n steps give n-1 turns of π/2n each
	assert.InDelta(t, float64(n-1)*math.Pi/(2*n), s.TurningCurvature(), 1e-9)
	assert.Greater(t, s.ChordCurvature()/s.TurningCurvature(), 0.0)

	f, err := s.FitWithQuality(2, 0.9999, 4)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f.MinR2(), 0.9999)
	mid := s.Distance() / 2
	assert.InDelta(t, 1/r, f.Curvature(mid), 0.01)
}

func TestSegment_RingMeasurements(t *testing.T) {
	g := raster(t, ring...)
	s := onlySegment(t, g)

	// the closing node is not counted twice
	assert.InDelta(t, 2, s.Mean(0), 1e-12)
	assert.InDelta(t, 2, s.Mean(math.Pi/2), 1e-12)
	assert.Zero(t, s.Chord())
	assert.True(t, math.IsNaN(s.CircularCurvature()))
	// seven 45° turns; the turn at the start node is not between two steps
	assert.InDelta(t, 7*math.Pi/4, s.TurningCurvature(), 1e-9)
}

func TestSegment_FitWithin(t *testing.T) {
	var row []byte
	for i := 0; i < 21; i++ {
		row = append(row, '#')
	}
	g := raster(t, string(row))
	s := onlySegment(t, g)

	f, err := s.FitWithin(1, 5, 10)
	require.NoError(t, err)
	assert.InDelta(t, 7, f.X().Evaluate(7), 1e-9)

	_, err = s.FitWithin(1, 10, 5)
	assert.ErrorIs(t, err, pixelgraph.ErrBadRange)
	_, err = s.FitWithin(1, 30, 40)
	assert.ErrorIs(t, err, regression.ErrNoData)
	_, err = s.FitWithin(1, math.NaN(), 40)
	assert.ErrorIs(t, err, pixelgraph.ErrBadRange)
}
