// SPDX-License-Identifier: MIT

package pixelgraph

import (
	"cmp"
	"fmt"
	"slices"
)

// Segment is a maximal path of the graph: between two nodes of degree ≠ 2,
// around a ring that returns to its start, or a single isolated node.
//
// Its identity is (End1, End2, Next1, Next2): the ends ordered by position
// (y, then x, then id) plus the first node stepped to from each end, so two
// walks of the same path compare equal and parallel paths between the same
// ends stay distinct.
type Segment struct {
	g            *Graph
	end1, end2   NodeID
	next1, next2 NodeID
	length       int
	distance     float64
}

// Key is the canonical identity of a Segment.
type Key [4]NodeID

// newSegment orders the ends canonically, swapping the neighbor slots with
// them. A self-loop keeps its lower neighbor in the first slot so both
// walking directions agree.
func (g *Graph) newSegment(a, b, nextA, nextB NodeID, length int, distance float64) Segment {
	if b != a && g.before(b, a) {
		a, b = b, a
		nextA, nextB = nextB, nextA
	}
	if a == b && nextA != NoNode && nextB != NoNode && g.before(nextB, nextA) {
		nextA, nextB = nextB, nextA
	}

	return Segment{g: g, end1: a, end2: b, next1: nextA, next2: nextB, length: length, distance: distance}
}

// End1 returns the first end in canonical order.
func (s Segment) End1() NodeID { return s.end1 }

// End2 returns the second end; equal to End1 for a ring or a single node.
func (s Segment) End2() NodeID { return s.end2 }

// Key returns the segment's canonical identity.
func (s Segment) Key() Key { return Key{s.end1, s.end2, s.next1, s.next2} }

// Length returns the number of edges along the segment, the closing edge of
// a ring included.
func (s Segment) Length() int { return s.length }

// Distance returns the Euclidean arc length along the segment.
func (s Segment) Distance() float64 { return s.distance }

// IsSingle reports whether the segment is one isolated node.
func (s Segment) IsSingle() bool { return s.end1 == s.end2 && s.length == 0 }

// IsLoop reports whether the segment closes on itself.
func (s Segment) IsLoop() bool { return s.end1 == s.end2 && s.length >= 3 }

// IsIsolated reports whether nothing else attaches to the segment.
func (s Segment) IsIsolated() bool {
	return s.IsSingle() || s.g.Degree(s.end1) == 1 && s.g.Degree(s.end2) == 1
}

// IsEdge reports whether the segment has a free end.
func (s Segment) IsEdge() bool {
	return s.IsSingle() || s.g.Degree(s.end1) == 1 || s.g.Degree(s.end2) == 1
}

// IsConnector reports whether the segment joins two distinct branch nodes.
func (s Segment) IsConnector() bool {
	return s.end1 != s.end2 && s.g.Degree(s.end1) > 2 && s.g.Degree(s.end2) > 2
}

// Nodes re-walks the segment from End1 to End2. For a ring the walk is
// closed: the first and last ids are both End1, and len(Nodes) == Length+1.
func (s Segment) Nodes() []NodeID {
	out := []NodeID{s.end1}
	if s.IsSingle() || s.next1 == NoNode {
		return out
	}
	g := s.g
	prev, cur := s.end1, s.next1
	for guard := 0; guard <= len(g.nodes); guard++ {
		out = append(out, cur)
		if cur == s.end2 || !g.Contains(cur) || len(g.nodes[cur].adj) != 2 {
			break
		}
		nxt := g.nodes[cur].adj[0]
		if nxt == prev {
			nxt = g.nodes[cur].adj[1]
		}
		prev, cur = cur, nxt
	}

	return out
}

// Points returns the positions along Nodes.
func (s Segment) Points() []Point {
	ids := s.Nodes()
	pts := make([]Point, len(ids))
	for i, id := range ids {
		pts[i] = s.g.nodes[id].pos
	}

	return pts
}

// InnerNodes returns the nodes strictly between the ends.
func (s Segment) InnerNodes() []NodeID {
	ids := s.Nodes()
	if len(ids) <= 2 {
		return nil
	}

	return ids[1 : len(ids)-1]
}

// EdgeNodes returns the nodes that belong to this segment alone: its inner
// nodes plus any end with no other attachment.
func (s Segment) EdgeNodes() []NodeID {
	var out []NodeID
	if s.g.Degree(s.end1) <= 1 {
		out = append(out, s.end1)
	}
	out = append(out, s.InnerNodes()...)
	if s.end2 != s.end1 && s.g.Degree(s.end2) == 1 {
		out = append(out, s.end2)
	}

	return out
}

// String returns a compact description of the segment.
func (s Segment) String() string {
	if s.IsSingle() {
		return fmt.Sprintf("Segment{node %d}", s.end1)
	}

	return fmt.Sprintf("Segment{%d-%d length=%d distance=%.3f}", s.end1, s.end2, s.length, s.distance)
}

// compareKeys orders segments by their Key tuple.
func compareKeys(a, b Segment) int {
	for i, ka := range a.Key() {
		if c := cmp.Compare(ka, b.Key()[i]); c != 0 {
			return c
		}
	}

	return 0
}

// trace walks from start through first and on through degree-2 nodes until
// it reaches a node of another degree or comes back to start. Every node
// passed is flagged in covered.
func (g *Graph) trace(start, first NodeID, covered []bool) Segment {
	covered[start] = true
	prev, cur := start, first
	length, distance := 1, g.dist(prev, cur)
	for cur != start && len(g.nodes[cur].adj) == 2 {
		covered[cur] = true
		nxt := g.nodes[cur].adj[0]
		if nxt == prev {
			nxt = g.nodes[cur].adj[1]
		}
		length++
		distance += g.dist(cur, nxt)
		prev, cur = cur, nxt
	}
	covered[cur] = true

	return g.newSegment(start, cur, first, prev, length, distance)
}

// Segments returns every segment of the graph in Key order.
//
// Nodes of degree 0 give single-node segments; each edge leaving a node of
// degree ≠ 2 is traced once from each of its ends and deduplicated by Key.
// Any ring made only of degree-2 nodes is then traced from its lowest id.
func (g *Graph) Segments() []Segment {
	covered := make([]bool, len(g.nodes))
	seen := make(map[Key]struct{})
	var segs []Segment
	add := func(s Segment) {
		if _, dup := seen[s.Key()]; dup {
			return
		}
		seen[s.Key()] = struct{}{}
		segs = append(segs, s)
	}

	for i := range g.nodes {
		n := &g.nodes[i]
		switch {
		case n.dead || len(n.adj) == 2:
		case len(n.adj) == 0:
			covered[i] = true
			add(g.newSegment(NodeID(i), NodeID(i), NoNode, NoNode, 0, 0))
		default:
			for _, nb := range n.adj {
				add(g.trace(NodeID(i), nb, covered))
			}
		}
	}
	for i := range g.nodes {
		n := &g.nodes[i]
		if !n.dead && !covered[i] {
			add(g.trace(NodeID(i), n.adj[0], covered))
		}
	}
	slices.SortFunc(segs, compareKeys)

	return segs
}

// RemoveSegment deletes the nodes returned by s.EdgeNodes, evaluated before
// any removal, and returns how many were removed.
func (g *Graph) RemoveSegment(s Segment) int {
	n := 0
	for _, id := range s.EdgeNodes() {
		if g.Contains(id) {
			g.remove(id)
			n++
		}
	}

	return n
}
