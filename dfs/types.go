// SPDX-License-Identifier: MIT

package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil Multigraph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrBadEdge is returned when an incident edge id is negative.
	ErrBadEdge = errors.New("dfs: negative edge id")
)

// NoEdge marks the parent edge of a DFS root.
const NoEdge = -1

// Multigraph is an undirected multigraph. Vertex ids may be sparse.
type Multigraph interface {
	// Incident returns the ids (>= 0) of the edges touching v, in the order
	// the search should try them. A self-loop appears once.
	Incident(v int) []int
	// Endpoints returns both ends of edge e (equal for a self-loop).
	Endpoints(e int) (u, v int)
}

// Option configures optional behavior of BackEdgeCycles.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// MaxDepth, if non-negative, stops the search from entering vertices that
	// are MaxDepth or more edges away from the root. Edges to already visited
	// vertices are still reported as cycles. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with no depth limit.
func DefaultOptions() Options {
	return Options{MaxDepth: -1}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
