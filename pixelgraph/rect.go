// SPDX-License-Identifier: MIT

package pixelgraph

import (
	"math"
	"slices"
)

// cellIndex buckets live nodes by the integer floor of their position so a
// unit cell can be probed without scanning the whole arena.
type cellIndex map[[2]int][]NodeID

func (g *Graph) newCellIndex() cellIndex {
	idx := make(cellIndex, g.live)
	for i := range g.nodes {
		if !g.nodes[i].dead {
			idx.add(g, NodeID(i))
		}
	}

	return idx
}

func (idx cellIndex) add(g *Graph, id NodeID) {
	p := g.nodes[id].pos
	k := [2]int{int(math.Floor(p.X)), int(math.Floor(p.Y))}
	idx[k] = append(idx[k], id)
}

// block is a rectangle of unit cells anchored at a node.
type block struct {
	left, top float64 // cell (0, 0) spans [left, left+1) × [top, top+1)
	w, h      int
}

// cell returns the block coordinates of p.
func (b block) cell(p Point) (int, int) {
	return int(math.Floor(p.X - b.left)), int(math.Floor(p.Y - b.top))
}

// occupied reports whether any live node falls in block cell (cx, cy).
func (g *Graph) occupied(idx cellIndex, b block, cx, cy int) bool {
	lx, ly := b.left+float64(cx), b.top+float64(cy)
	fx, fy := int(math.Floor(lx)), int(math.Floor(ly))
	// a unit cell overlaps at most two integer buckets per axis
	for bx := fx; bx <= fx+1; bx++ {
		for by := fy; by <= fy+1; by++ {
			for _, id := range idx[[2]int{bx, by}] {
				n := &g.nodes[id]
				if n.dead {
					continue
				}
				if x, y := b.cell(n.pos); x == cx && y == cy {
					return true
				}
			}
		}
	}

	return false
}

// largestBlock finds the largest filled block of unit cells whose top-left
// cell is centered on node id, growing right then down.
//
// Once the scan ends, a width one short of the first row's run, or a height
// one short of the scanned rows, is reduced by a further cell. This trims
// a ragged last column or row and is kept exactly as tuned.
func (g *Graph) largestBlock(idx cellIndex, id NodeID) block {
	p := g.nodes[id].pos
	b := block{left: p.X - 0.5, top: p.Y - 0.5}

	bestW, bestH := 0, 0
	firstRow := 0
	width := math.MaxInt
	height := 0
	for y := 0; width > 0; y++ {
		height = y
		if bestW*bestH < width*height {
			bestW, bestH = width, height
		}
		for x := 0; x < width; x++ {
			if g.occupied(idx, b, x, y) {
				continue
			}
			if y == 0 {
				firstRow = x
			}
			width = x
			if bestW*bestH < width*height {
				bestW, bestH = width, height
			}
			break
		}
	}
	if bestW == firstRow-1 {
		bestW = firstRow - 2
	}
	if bestH == height-1 {
		bestH = height - 2
	}
	b.w, b.h = bestW, bestH

	return b
}

// members returns the live nodes inside b, in id order.
func (g *Graph) members(idx cellIndex, b block) []NodeID {
	var ids []NodeID
	for cy := 0; cy < b.h; cy++ {
		for cx := 0; cx < b.w; cx++ {
			lx, ly := b.left+float64(cx), b.top+float64(cy)
			fx, fy := int(math.Floor(lx)), int(math.Floor(ly))
			for bx := fx; bx <= fx+1; bx++ {
				for by := fy; by <= fy+1; by++ {
					for _, id := range idx[[2]int{bx, by}] {
						if g.nodes[id].dead {
							continue
						}
						if x, y := b.cell(g.nodes[id].pos); x == cx && y == cy {
							ids = append(ids, id)
						}
					}
				}
			}
		}
	}
	slices.Sort(ids)

	return ids
}

// CollapseRectangles replaces every filled block of at least 2×2 cells with
// a single node at the block's centroid, rewiring the block's outside
// neighbors to it. Sweeps repeat until a sweep changes nothing, so a second
// call is a no-op. It returns the number of blocks collapsed.
//
// Thick ink (a filled square, a wide bar) becomes one node instead of a
// lattice of tiny cycles.
func (g *Graph) CollapseRectangles() int {
	total := 0
	for {
		idx := g.newCellIndex()
		n := 0
		// appended centroids are visited in the same sweep
		for i := 0; i < len(g.nodes); i++ {
			if g.nodes[i].dead {
				continue
			}
			b := g.largestBlock(idx, NodeID(i))
			if b.w <= 1 || b.h <= 1 {
				continue
			}
			group := g.members(idx, b)
			if len(group) < 2 {
				continue
			}
			idx.add(g, g.replace(group))
			n++
		}
		if n == 0 {
			return total
		}
		total += n
	}
}
