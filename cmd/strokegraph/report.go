// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/strokegraph/pixelgraph"
	"github.com/katalvlaran/strokegraph/stroke"
)

// Report is the YAML document printed for one image.
type Report struct {
	File          string          `yaml:"file"`
	Width         int             `yaml:"width"`
	Height        int             `yaml:"height"`
	Components    int             `yaml:"components"`
	Nodes         int             `yaml:"nodes"`
	Branches      int             `yaml:"branches"`
	TotalDistance float64         `yaml:"total_distance"`
	MaxCurvature  float64         `yaml:"max_curvature"`
	Segments      []SegmentReport `yaml:"segments"`
	Loops         []LoopReport    `yaml:"loops"`
	Longest       *SummaryReport  `yaml:"longest,omitempty"`
	// LongestError is set when the longest segment could not be fitted.
	LongestError  string          `yaml:"longest_error,omitempty"`
}

// SegmentReport describes one segment.
type SegmentReport struct {
	Kind      string     `yaml:"kind"`
	From      [2]float64 `yaml:"from,flow"`
	To        [2]float64 `yaml:"to,flow"`
	Length    int        `yaml:"length"`
	Distance  float64    `yaml:"distance"`
	Curvature float64    `yaml:"curvature"`
}

// LoopReport describes one loop.
type LoopReport struct {
	Segments int     `yaml:"segments"`
	Length   int     `yaml:"length"`
	Distance float64 `yaml:"distance"`
}

// SummaryReport flattens stroke.Summary.
type SummaryReport struct {
	Distance    float64 `yaml:"distance"`
	Degree      int     `yaml:"degree"`
	MinR2       float64 `yaml:"min_r2"`
	Inflections int     `yaml:"inflections"`
	Peaks       int     `yaml:"peaks"`
	Troughs     int     `yaml:"troughs"`
	Trend       int     `yaml:"trend"`
	StartAngle  float64 `yaml:"start_angle"`
	EndAngle    float64 `yaml:"end_angle"`
}

func newReport(file string, width, height int, sk *stroke.Skeleton) Report {
	g := sk.Graph()
	r := Report{
		File:          file,
		Width:         width,
		Height:        height,
		Components:    sk.Components(),
		Nodes:         g.Len(),
		Branches:      len(sk.Branches()),
		TotalDistance: sk.TotalDistance(),
		MaxCurvature:  sk.MaxCurvature(),
		Segments:      []SegmentReport{},
		Loops:         []LoopReport{},
	}
	for _, s := range sk.Segments() {
		from, _ := g.Position(s.End1())
		to, _ := g.Position(s.End2())
		r.Segments = append(r.Segments, SegmentReport{
			Kind:      kind(s),
			From:      [2]float64{from.X, from.Y},
			To:        [2]float64{to.X, to.Y},
			Length:    s.Length(),
			Distance:  s.Distance(),
			Curvature: s.CircularCurvature(),
		})
	}
	for _, l := range sk.Loops() {
		r.Loops = append(r.Loops, LoopReport{
			Segments: len(l.Segments()),
			Length:   l.Length(),
			Distance: l.Distance(),
		})
	}

	longest, _ := sk.Longest()
	sum, err := sk.LongestSummary()
	switch {
	case err != nil:
		r.LongestError = err.Error()
	case sum != nil:
		r.Longest = &SummaryReport{
			Distance:    longest.Distance(),
			Degree:      sum.Degree,
			MinR2:       sum.MinR2,
			Inflections: sum.Inflections,
			Peaks:       sum.Turns.Peaks,
			Troughs:     sum.Turns.Troughs,
			Trend:       sum.Turns.Trend,
			StartAngle:  sum.StartAngle,
			EndAngle:    sum.EndAngle,
		}
	}

	return r
}

func kind(s pixelgraph.Segment) string {
	switch {
	case s.IsSingle():
		return "single"
	case s.IsLoop():
		return "loop"
	case s.IsIsolated():
		return "isolated"
	case s.IsEdge():
		return "edge"
	case s.IsConnector():
		return "connector"
	default:
		return "inner"
	}
}
