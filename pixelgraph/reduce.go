// SPDX-License-Identifier: MIT

package pixelgraph

import "math"

// Reduction thresholds.
const (
	// MaxConnectorLength is the edge count below which a connector collapses.
	MaxConnectorLength = 5

	// MaxEndGap caps the distance bridged by ConnectNearbyEnds.
	MaxEndGap = 5.0

	// endGapAreaRatio scales the bounding-box area into an end gap.
	endGapAreaRatio = 0.001

	// Noise cut-offs relative to the total and the longest segment distance.
	noiseTotalRatio   = 0.025
	noiseLongestRatio = 0.075
)

// CollapseShortConnectors merges every connector segment shorter than
// MaxConnectorLength edges into one node at the centroid of its nodes, and
// repeats until no such segment remains. Raster quantization often splits
// one crossing into two branch nodes a pixel or two apart; this rejoins them.
//
// Within a round, a segment that shares a node with one already merged is
// left for the next round. Returns the number of merges.
func (g *Graph) CollapseShortConnectors() int {
	total := 0
	for {
		var groups [][]NodeID
		for _, s := range g.Segments() {
			if s.IsConnector() && s.Length() < MaxConnectorLength {
				groups = append(groups, s.Nodes())
			}
		}
		n := 0
		for _, ids := range groups {
			if !g.allLive(ids) {
				continue
			}
			g.replace(ids)
			n++
		}
		if n == 0 {
			return total
		}
		total += n
	}
}

// ConnectNearbyEnds links every pair of degree-1 nodes closer than
// min(MaxEndGap, 0.001·area of the bounding box). Candidates are the free
// ends present before the first link is made. Returns the number of new edges.
func (g *Graph) ConnectNearbyEnds() int {
	ends := g.VerticesByDegree(1, 1)
	b := g.Bounds()
	limit := math.Min(MaxEndGap, b.Width()*b.Height()*endGapAreaRatio)

	n := 0
	for i, a := range ends {
		for _, c := range ends[i+1:] {
			if g.dist(a, c) < limit && g.connect(a, c) {
				n++
			}
		}
	}

	return n
}

// PruneNoise removes short spurs left by thinning, in two steps, once the
// graph has more than two segments:
//
//  1. every edge segment (one with a free end) whose distance is under
//     2.5% of the total segment distance and 7.5% of the longest;
//  2. among segments joining the same pair of ends, every one that is no
//     longer than another of the pair and is under the same cut-offs.
//
// The cut-offs come from the segments before step 1. Returns the number of
// segments removed.
func (g *Graph) PruneNoise() int {
	segs := g.Segments()
	if len(segs) <= 2 {
		return 0
	}
	var total, longest float64
	for _, s := range segs {
		total += s.Distance()
		longest = math.Max(longest, s.Distance())
	}
	noise := func(s Segment) bool {
		return s.Distance() < total*noiseTotalRatio && s.Distance() < longest*noiseLongestRatio
	}

	// 1) Spurs; edge nodes are fixed before anything is removed
	var spurs [][]NodeID
	for _, s := range segs {
		if s.IsEdge() && noise(s) {
			spurs = append(spurs, s.EdgeNodes())
		}
	}
	removed := g.removeGroups(spurs)

	// 2) Short parallels
	segs = g.Segments()
	var parallels [][]NodeID
	for j, s2 := range segs {
		if !noise(s2) {
			continue
		}
		for i, s1 := range segs {
			if i != j && sameEnds(s1, s2) && longerOrTied(s1, s2, i, j) {
				parallels = append(parallels, s2.EdgeNodes())
				break
			}
		}
	}

	return removed + g.removeGroups(parallels)
}

// removeGroups deletes each group's live nodes and counts the groups that
// lost at least one node.
func (g *Graph) removeGroups(groups [][]NodeID) int {
	n := 0
	for _, ids := range groups {
		hit := false
		for _, id := range ids {
			if g.Contains(id) {
				g.remove(id)
				hit = true
			}
		}
		if hit {
			n++
		}
	}

	return n
}

func (g *Graph) allLive(ids []NodeID) bool {
	for _, id := range ids {
		if !g.Contains(id) {
			return false
		}
	}

	return true
}

func sameEnds(a, b Segment) bool {
	return a.end1 == b.end1 && a.end2 == b.end2
}

// longerOrTied reports whether s1 (index i) outranks s2 (index j): strictly
// longer, or equally long and earlier in Key order.
func longerOrTied(s1, s2 Segment, i, j int) bool {
	if s1.Distance() != s2.Distance() {
		return s1.Distance() > s2.Distance()
	}

	return i < j
}
