// SPDX-License-Identifier: MIT

package pixelgraph

import (
	"fmt"
	"math"
	"slices"
)

// NodeID addresses a node in its Graph's arena.
type NodeID int

// NoNode marks an absent node reference.
const NoNode NodeID = -1

// Point is a position in image coordinates (x right, y down).
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// node is one arena slot.
type node struct {
	pos  Point
	adj  []NodeID // ascending, no duplicates, never the node itself
	dead bool
}

// Graph is an undirected simple graph of positioned nodes.
// The zero value is an empty graph ready for use.
type Graph struct {
	nodes []node
	live  int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}

// AddNode appends an isolated node at (x, y) and returns its id.
func (g *Graph) AddNode(x, y float64) NodeID {
	g.nodes = append(g.nodes, node{pos: Point{X: x, Y: y}})
	g.live++

	return NodeID(len(g.nodes) - 1)
}

// Connect adds the undirected edge a–b. Connecting an existing pair is a no-op.
func (g *Graph) Connect(a, b NodeID) error {
	if !g.Contains(a) || !g.Contains(b) {
		return fmt.Errorf("pixelgraph: Connect(%d, %d): %w", a, b, ErrUnknownNode)
	}
	if a == b {
		return fmt.Errorf("pixelgraph: Connect(%d, %d): %w", a, b, ErrSelfEdge)
	}
	g.connect(a, b)

	return nil
}

// Disconnect removes the edge a–b if present.
func (g *Graph) Disconnect(a, b NodeID) error {
	if !g.Contains(a) || !g.Contains(b) {
		return fmt.Errorf("pixelgraph: Disconnect(%d, %d): %w", a, b, ErrUnknownNode)
	}
	g.disconnect(a, b)

	return nil
}

// Remove deletes node id and all its edges. Its id is not reused.
func (g *Graph) Remove(id NodeID) error {
	if !g.Contains(id) {
		return fmt.Errorf("pixelgraph: Remove(%d): %w", id, ErrUnknownNode)
	}
	g.remove(id)

	return nil
}

// Contains reports whether id refers to a live node.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && !g.nodes[id].dead
}

// Position returns the location of node id.
func (g *Graph) Position(id NodeID) (Point, error) {
	if !g.Contains(id) {
		return Point{}, fmt.Errorf("pixelgraph: Position(%d): %w", id, ErrUnknownNode)
	}

	return g.nodes[id].pos, nil
}

// Degree returns the number of neighbors of id, or 0 for an unknown id.
func (g *Graph) Degree(id NodeID) int {
	if !g.Contains(id) {
		return 0
	}

	return len(g.nodes[id].adj)
}

// Neighbors returns a copy of id's neighbors in ascending order.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}

	return slices.Clone(g.nodes[id].adj)
}

// Len returns the number of live nodes.
func (g *Graph) Len() int { return g.live }

// NodeIDs returns the live node ids in ascending order.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, g.live)
	for i := range g.nodes {
		if !g.nodes[i].dead {
			ids = append(ids, NodeID(i))
		}
	}

	return ids
}

// Points returns the positions of the live nodes in id order.
func (g *Graph) Points() []Point {
	pts := make([]Point, 0, g.live)
	for i := range g.nodes {
		if !g.nodes[i].dead {
			pts = append(pts, g.nodes[i].pos)
		}
	}

	return pts
}

// Bounds returns the bounding box of the live nodes; the zero Rect when empty.
func (g *Graph) Bounds() Rect {
	return bounds(g.Points())
}

// VerticesByDegree returns the live nodes whose degree lies in [minDeg, maxDeg].
func (g *Graph) VerticesByDegree(minDeg, maxDeg int) []NodeID {
	var ids []NodeID
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.dead && len(n.adj) >= minDeg && len(n.adj) <= maxDeg {
			ids = append(ids, NodeID(i))
		}
	}

	return ids
}

func bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}

	return r
}

// connect inserts b into a's adjacency and vice versa; callers check a != b.
func (g *Graph) connect(a, b NodeID) bool {
	added := insertSorted(&g.nodes[a].adj, b)
	insertSorted(&g.nodes[b].adj, a)

	return added
}

func (g *Graph) disconnect(a, b NodeID) {
	deleteSorted(&g.nodes[a].adj, b)
	deleteSorted(&g.nodes[b].adj, a)
}

func (g *Graph) remove(id NodeID) {
	n := &g.nodes[id]
	for _, nb := range n.adj {
		deleteSorted(&g.nodes[nb].adj, id)
	}
	n.adj = nil
	n.dead = true
	g.live--
}

// replace merges ids into one new node at their centroid, wired to every
// neighbor of the group outside the group.
func (g *Graph) replace(ids []NodeID) NodeID {
	var cx, cy float64
	inGroup := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		cx += g.nodes[id].pos.X
		cy += g.nodes[id].pos.Y
		inGroup[id] = true
	}
	var outside []NodeID
	for _, id := range ids {
		for _, nb := range g.nodes[id].adj {
			if !inGroup[nb] {
				outside = append(outside, nb)
			}
		}
	}
	for _, id := range ids {
		g.remove(id)
	}
	k := float64(len(ids))
	c := g.AddNode(cx/k, cy/k)
	for _, nb := range outside {
		g.connect(c, nb)
	}

	return c
}

// before orders nodes by position (y, then x) and then by id.
func (g *Graph) before(a, b NodeID) bool {
	pa, pb := g.nodes[a].pos, g.nodes[b].pos
	if pa.Y != pb.Y {
		return pa.Y < pb.Y
	}
	if pa.X != pb.X {
		return pa.X < pb.X
	}

	return a < b
}

func (g *Graph) dist(a, b NodeID) float64 {
	return g.nodes[a].pos.Dist(g.nodes[b].pos)
}

func insertSorted(s *[]NodeID, v NodeID) bool {
	i, found := slices.BinarySearch(*s, v)
	if found {
		return false
	}
	*s = slices.Insert(*s, i, v)

	return true
}

func deleteSorted(s *[]NodeID, v NodeID) {
	if i, found := slices.BinarySearch(*s, v); found {
		*s = slices.Delete(*s, i, i+1)
	}
}
