// SPDX-License-Identifier: MIT

package pixelgraph_test

import (
	"fmt"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/pixelgraph"
)

// ExampleGraph_Loops traces a hand-drawn "8": two rings meeting at one pixel.
func ExampleGraph_Loops() {
	rows := []string{
		".#.#.",
		"#.#.#",
		".#.#.",
	}
	gg, _ := gridgraph.FromPredicate(5, 3, func(x, y int) bool { return rows[y][x] == '#' }, gridgraph.Conn8)
	g, _ := pixelgraph.FromGrid(gg)
	g.CollapseRectangles()
	g.CollapseShortConnectors()
	g.ConnectNearbyEnds()

	fmt.Println("nodes:", g.Len())
	fmt.Println("segments:", len(g.Segments()))
	loops, _ := g.Loops(pixelgraph.DefaultMaxLoopSegments)
	for _, l := range loops {
		fmt.Printf("loop: %d segment(s), %d edges\n", len(l.Segments()), l.Length())
	}
	// Output:
	// nodes: 7
	// segments: 2
	// loop: 1 segment(s), 4 edges
	// loop: 1 segment(s), 4 edges
}

// ExampleGraph_CollapseRectangles shows a blot of ink reducing to one node.
func ExampleGraph_CollapseRectangles() {
	gg, _ := gridgraph.FromPredicate(4, 4, func(x, y int) bool { return true }, gridgraph.Conn8)
	g, _ := pixelgraph.FromGrid(gg)
	fmt.Println("before:", g.Len())
	g.CollapseRectangles()
	p, _ := g.Position(g.NodeIDs()[0])
	fmt.Println("after:", g.Len(), p)
	// Output:
	// before: 16
	// after: 1 {1.5 1.5}
}
