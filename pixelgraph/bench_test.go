// SPDX-License-Identifier: MIT

package pixelgraph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/pixelgraph"
)

// ringGrid draws a one-pixel circle of radius r.
func ringGrid(b *testing.B, r int) *gridgraph.GridGraph {
	size := 2*r + 3
	gg, err := gridgraph.FromPredicate(size, size, func(x, y int) bool {
		d := math.Hypot(float64(x-r-1), float64(y-r-1))
		return math.Abs(d-float64(r)) < 0.5
	}, gridgraph.Conn8)
	if err != nil {
		b.Fatal(err)
	}

	return gg
}

// BenchmarkPipeline measures graph construction, reduction and tracing.
func BenchmarkPipeline(b *testing.B) {
	gg := ringGrid(b, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := pixelgraph.FromGrid(gg)
		if err != nil {
			b.Fatal(err)
		}
		g.CollapseRectangles()
		g.CollapseShortConnectors()
		g.ConnectNearbyEnds()
		if _, err = g.Loops(pixelgraph.DefaultMaxLoopSegments); err != nil {
			b.Fatal(err)
		}
	}
}
