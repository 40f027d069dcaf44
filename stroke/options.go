// SPDX-License-Identifier: MIT

package stroke

import (
	"errors"

	"github.com/katalvlaran/strokegraph/pixelgraph"
)

// ErrBadOption is returned by Analyze for an out-of-range option.
var ErrBadOption = errors.New("stroke: invalid option")

// Defaults applied by DefaultOptions.
const (
	DefaultSummaryDegree = 4
	// loops no longer than min(area·minLoopAreaRatio, maxMinLoopLength) edges
	// are treated as ink noise
	minLoopAreaRatio = 0.0002
	maxMinLoopLength = 5.0
)

// Options configures Analyze.
type Options struct {
	// MaxLoopSegments bounds the loop search depth in segments.
	MaxLoopSegments int
	// PruneNoise enables the spur and short-parallel removal pass.
	PruneNoise bool
	// SummaryDegree is the polynomial degree of the longest-segment fit.
	SummaryDegree int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MaxLoopSegments=20, PruneNoise=true, SummaryDegree=4.
func DefaultOptions() Options {
	return Options{
		MaxLoopSegments: pixelgraph.DefaultMaxLoopSegments,
		PruneNoise:      true,
		SummaryDegree:   DefaultSummaryDegree,
	}
}

// WithMaxLoopSegments sets Options.MaxLoopSegments.
func WithMaxLoopSegments(n int) Option {
	return func(o *Options) { o.MaxLoopSegments = n }
}

// WithPruneNoise toggles the noise pruning pass.
func WithPruneNoise(on bool) Option {
	return func(o *Options) { o.PruneNoise = on }
}

// WithSummaryDegree sets the degree used by Skeleton.LongestSummary.
func WithSummaryDegree(d int) Option {
	return func(o *Options) { o.SummaryDegree = d }
}

func (o Options) validate() error {
	if o.MaxLoopSegments < 0 || o.SummaryDegree < 0 {
		return ErrBadOption
	}

	return nil
}
