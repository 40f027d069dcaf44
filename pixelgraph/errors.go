// SPDX-License-Identifier: MIT

package pixelgraph

import "errors"

// Sentinel errors for pixelgraph operations.
var (
	// ErrUnknownNode indicates an id that is out of range or already removed.
	ErrUnknownNode = errors.New("pixelgraph: unknown node")

	// ErrSelfEdge indicates an attempt to connect a node to itself.
	ErrSelfEdge = errors.New("pixelgraph: node cannot connect to itself")

	// ErrNilGrid indicates a nil *gridgraph.GridGraph.
	ErrNilGrid = errors.New("pixelgraph: grid is nil")

	// ErrBadRange indicates an arc-length window with tMin > tMax or a NaN bound.
	ErrBadRange = errors.New("pixelgraph: invalid arc-length range")
)
