// SPDX-License-Identifier: MIT

package pixelgraph

import "github.com/katalvlaran/strokegraph/gridgraph"

// diagonals lists the four diagonal steps checked by FromGrid.
var diagonals = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// FromGrid builds a Graph with one node per foreground cell of gg, created in
// row-major order so node ids follow the raster.
//
// Edges:
//   - orthogonal neighbors are always linked;
//   - diagonal neighbors are linked only when both cells between them are
//     background, which keeps one-pixel diagonal strokes connected without
//     short-circuiting an existing orthogonal path.
//
// gg.Conn is ignored; the rule above fixes connectivity.
// Complexity: O(W×H) time and memory.
func FromGrid(gg *gridgraph.GridGraph) (*Graph, error) {
	if gg == nil {
		return nil, ErrNilGrid
	}
	w, h := gg.Width, gg.Height
	g := New()
	ids := make([]NodeID, w*h)

	// 1) Nodes and orthogonal edges
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ids[y*w+x] = NoNode
			if !gg.IsForeground(x, y) {
				continue
			}
			id := g.AddNode(float64(x), float64(y))
			ids[y*w+x] = id
			if x > 0 && ids[y*w+x-1] != NoNode {
				g.connect(ids[y*w+x-1], id)
			}
			if y > 0 && ids[(y-1)*w+x] != NoNode {
				g.connect(ids[(y-1)*w+x], id)
			}
		}
	}

	// 2) Diagonals across two background cells
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := ids[y*w+x]
			if id == NoNode {
				continue
			}
			for _, d := range diagonals {
				nx, ny := x+d[0], y+d[1]
				if !gg.IsForeground(nx, ny) || gg.IsForeground(nx, y) || gg.IsForeground(x, ny) {
					continue
				}
				g.connect(ids[ny*w+nx], id)
			}
		}
	}

	return g, nil
}
