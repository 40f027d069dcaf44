// SPDX-License-Identifier: MIT

package pixelgraph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/strokegraph/dfs"
)

// DefaultMaxLoopSegments bounds how many segments deep the loop search goes.
const DefaultMaxLoopSegments = 20

// Loop is a set of segments forming one closed walk, in Key order.
type Loop struct {
	segs []Segment
	sig  string
}

// Segments returns a copy of the loop's segments.
func (l Loop) Segments() []Segment { return slices.Clone(l.segs) }

// Length returns the total edge count of the loop.
func (l Loop) Length() int {
	n := 0
	for _, s := range l.segs {
		n += s.Length()
	}

	return n
}

// Distance returns the total arc length of the loop.
func (l Loop) Distance() float64 {
	d := 0.0
	for _, s := range l.segs {
		d += s.Distance()
	}

	return d
}

// Contains reports whether s is one of the loop's segments.
func (l Loop) Contains(s Segment) bool {
	return slices.ContainsFunc(l.segs, func(t Segment) bool { return t.Key() == s.Key() })
}

// String returns the loop's signature.
func (l Loop) String() string { return l.sig }

func newLoop(segs []Segment) Loop {
	keys := make([]string, len(segs))
	for i, s := range segs {
		k := s.Key()
		keys[i] = fmt.Sprintf("%d,%d,%d,%d", k[0], k[1], k[2], k[3])
	}

	return Loop{segs: segs, sig: strings.Join(keys, ";")}
}

// segmentGraph views segments as the edges of a multigraph on their ends.
// Single-node segments carry no edge and are left out.
type segmentGraph struct {
	segs     []Segment
	incident map[int][]int
}

func newSegmentGraph(segs []Segment) *segmentGraph {
	sg := &segmentGraph{segs: segs, incident: make(map[int][]int)}
	for e, s := range segs {
		if s.IsSingle() {
			continue
		}
		a, b := int(s.end1), int(s.end2)
		sg.incident[a] = append(sg.incident[a], e)
		if b != a {
			sg.incident[b] = append(sg.incident[b], e)
		}
	}

	return sg
}

func (sg *segmentGraph) Incident(v int) []int { return sg.incident[v] }

func (sg *segmentGraph) Endpoints(e int) (int, int) {
	return int(sg.segs[e].end1), int(sg.segs[e].end2)
}

// roots lists segment first ends in segment order, without repeats.
func (sg *segmentGraph) roots() []int {
	var rs []int
	seen := make(map[int]bool)
	for _, s := range sg.segs {
		if r := int(s.end1); !s.IsSingle() && !seen[r] {
			seen[r] = true
			rs = append(rs, r)
		}
	}

	return rs
}

// Loops returns the elementary loops of the graph's current segments.
// See FindLoops.
func (g *Graph) Loops(maxSegments int) ([]Loop, error) {
	return FindLoops(g.Segments(), maxSegments)
}

// FindLoops extracts the elementary loops formed by segs, following at most
// maxSegments segments away from each search root.
//
// A depth-first search over the segment multigraph closes one candidate
// cycle per back edge. When more than one candidate appears, some segments
// are shared between cycles (two bowls side by side, a figure eight), so
// the search is repeated inside every candidate smaller than segs: a
// candidate that yields one cycle is elementary and kept, otherwise its own
// sub-loops replace it. Loops are returned sorted by signature.
func FindLoops(segs []Segment, maxSegments int) ([]Loop, error) {
	segs = slices.Clone(segs)
	slices.SortFunc(segs, compareKeys)
	found, err := elementary(segs, maxSegments)
	if err != nil {
		return nil, fmt.Errorf("pixelgraph: FindLoops: %w", err)
	}
	byID := make(map[string]Loop, len(found))
	for _, segs := range found {
		l := newLoop(segs)
		byID[l.sig] = l
	}
	loops := make([]Loop, 0, len(byID))
	for _, l := range byID {
		loops = append(loops, l)
	}
	slices.SortFunc(loops, func(a, b Loop) int { return strings.Compare(a.sig, b.sig) })

	return loops, nil
}

func elementary(segs []Segment, maxSegments int) ([][]Segment, error) {
	sg := newSegmentGraph(segs)
	cycles, err := dfs.BackEdgeCycles(sg, sg.roots(), dfs.WithMaxDepth(maxSegments))
	if err != nil {
		return nil, err
	}
	loops := make([][]Segment, len(cycles))
	for i, c := range cycles {
		loops[i] = make([]Segment, len(c))
		for j, e := range c {
			loops[i][j] = segs[e]
		}
	}
	if len(loops) <= 1 {
		return loops, nil
	}

	var out [][]Segment
	for _, l := range loops {
		if len(l) >= len(segs) {
			continue
		}
		nested, err := elementary(l, maxSegments)
		if err != nil {
			return nil, err
		}
		if len(nested) <= 1 {
			out = append(out, l)
		} else {
			out = append(out, nested...)
		}
	}

	return out, nil
}
