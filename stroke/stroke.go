// SPDX-License-Identifier: MIT

package stroke

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/numeric"
	"github.com/katalvlaran/strokegraph/pixelgraph"
)

// Sample positions for LongestSummary, as fractions of the arc length.
const (
	inflectionFrom = 0.01
	inflectionTo   = 0.99
	turnFrom       = 0.10
	turnTo         = 0.90
	angleFrom      = 0.05
	angleTo        = 0.95
)

// Skeleton is the reduced stroke graph of one raster together with its
// segments, loops and ink component count.
type Skeleton struct {
	graph      *pixelgraph.Graph
	segments   []pixelgraph.Segment
	loops      []pixelgraph.Loop
	components int
	longest    int // index into segments, -1 when empty
	degree     int
}

// Summary describes the longest segment through a polynomial fit of its
// coordinates against arc length.
type Summary struct {
	Degree      int
	MinR2       float64
	Inflections int
	Turns       numeric.Extrema
	// StartAngle and EndAngle are tangent directions at 5% and 95% of the
	// arc length, measured from End1 toward End2.
	StartAngle float64
	EndAngle   float64
}

// Analyze reduces the ink of gg to a Skeleton.
// gg's connectivity is used for Components only; the pixel graph always
// joins 8-neighbours.
func Analyze(gg *gridgraph.GridGraph, opts ...Option) (*Skeleton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("stroke: Analyze: %w", err)
	}
	if gg == nil {
		return nil, fmt.Errorf("stroke: Analyze: %w", pixelgraph.ErrNilGrid)
	}

	log := Logger()
	g, err := pixelgraph.FromGrid(gg)
	if err != nil {
		return nil, fmt.Errorf("stroke: Analyze: %w", err)
	}
	log.Debug("pixel graph built", "nodes", g.Len(), "width", gg.Width, "height", gg.Height)

	n := g.CollapseRectangles()
	log.Debug("rectangles collapsed", "merges", n, "nodes", g.Len())
	n = g.CollapseShortConnectors()
	log.Debug("short connectors collapsed", "merges", n, "nodes", g.Len())
	n = g.ConnectNearbyEnds()
	log.Debug("nearby ends connected", "edges", n)
	if o.PruneNoise {
		n = g.PruneNoise()
		log.Debug("noise pruned", "segments", n, "nodes", g.Len())
	}

	segs := g.Segments()
	loops, err := pixelgraph.FindLoops(segs, o.MaxLoopSegments)
	if err != nil {
		return nil, fmt.Errorf("stroke: Analyze: %w", err)
	}
	all := len(loops)
	loops = filterLoops(loops, g.Bounds())
	log.Debug("skeleton extracted", "segments", len(segs), "loops", len(loops), "dropped_loops", all-len(loops))

	return &Skeleton{
		graph:      g,
		segments:   segs,
		loops:      loops,
		components: len(gg.ConnectedComponents()),
		longest:    longestIndex(segs),
		degree:     o.SummaryDegree,
	}, nil
}

// filterLoops drops loops of at most min(area·minLoopAreaRatio, maxMinLoopLength) edges.
func filterLoops(loops []pixelgraph.Loop, box pixelgraph.Rect) []pixelgraph.Loop {
	limit := math.Min(box.Width()*box.Height()*minLoopAreaRatio, maxMinLoopLength)
	kept := loops[:0]
	for _, l := range loops {
		if float64(l.Length()) > limit {
			kept = append(kept, l)
		}
	}

	return kept
}

// longestIndex returns the first segment of maximal Distance, or -1.
func longestIndex(segs []pixelgraph.Segment) int {
	best := -1
	for i, s := range segs {
		if best < 0 || s.Distance() > segs[best].Distance() {
			best = i
		}
	}

	return best
}

// Graph returns the reduced pixel graph.
func (s *Skeleton) Graph() *pixelgraph.Graph { return s.graph }

// Segments returns the segments in canonical key order.
func (s *Skeleton) Segments() []pixelgraph.Segment { return slices.Clone(s.segments) }

// Loops returns the loops that survived the length filter.
func (s *Skeleton) Loops() []pixelgraph.Loop { return slices.Clone(s.loops) }

// Components returns the number of connected ink components of the raster.
func (s *Skeleton) Components() int { return s.components }

// Longest returns the segment with the greatest arc length; ok is false for
// an empty skeleton.
func (s *Skeleton) Longest() (seg pixelgraph.Segment, ok bool) {
	if s.longest < 0 {
		return pixelgraph.Segment{}, false
	}

	return s.segments[s.longest], true
}

// TotalDistance sums the arc length of every segment.
func (s *Skeleton) TotalDistance() float64 {
	total := 0.0
	for _, seg := range s.segments {
		total += seg.Distance()
	}

	return total
}

// MaxCurvature returns the largest circular curvature over all segments,
// ignoring segments for which it is undefined. It is 0 for an empty
// skeleton.
func (s *Skeleton) MaxCurvature() float64 {
	best := 0.0
	for _, seg := range s.segments {
		if c := seg.CircularCurvature(); c > best {
			best = c
		}
	}

	return best
}

// Branches returns the nodes where three or more segments meet.
func (s *Skeleton) Branches() []pixelgraph.NodeID {
	return s.graph.VerticesByDegree(3, math.MaxInt)
}

// LongestSummary fits the longest segment and measures it. It returns
// (nil, nil) for an empty skeleton and an error when the segment is too
// short to fit at the configured degree.
func (s *Skeleton) LongestSummary() (*Summary, error) {
	seg, ok := s.Longest()
	if !ok {
		return nil, nil
	}
	f, err := seg.Fit(s.degree)
	if err != nil {
		Logger().Warn("longest segment fit failed", "degree", s.degree, "segment", seg.String(), "err", err)
		return nil, fmt.Errorf("stroke: LongestSummary: %w", err)
	}

	length := seg.Distance()
	inflections, err := f.Inflections(length*inflectionFrom, length*inflectionTo)
	if err != nil {
		return nil, fmt.Errorf("stroke: LongestSummary: %w", err)
	}
	turns, err := f.Turns(length*turnFrom, length*turnTo, 2*int(math.Ceil(length)))
	if err != nil {
		return nil, fmt.Errorf("stroke: LongestSummary: %w", err)
	}

	return &Summary{
		Degree:      s.degree,
		MinR2:       f.MinR2(),
		Inflections: inflections,
		Turns:       turns,
		StartAngle:  f.Angle(length * angleFrom),
		EndAngle:    f.Angle(length * angleTo),
	}, nil
}
