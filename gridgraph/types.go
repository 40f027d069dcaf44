// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeSize indicates a negative width or height.
	ErrNegativeSize = errors.New("gridgraph: width and height must be >= 0")
	// ErrNilImage indicates a nil image or membership predicate.
	ErrNilImage = errors.New("gridgraph: nil image or predicate")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// ForegroundThreshold is the minimum cell value considered ink.
	ForegroundThreshold int
	// Conn chooses 4- or 8-directional connectivity for ConnectedComponents.
	Conn Connectivity
}

// DefaultGridOptions returns ForegroundThreshold=1 (values ≥1 are ink), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		ForegroundThreshold: 1,
		Conn:                Conn8,
	}
}

// GridGraph is an immutable binary raster.
// Width and Height define dimensions; fg holds the row-major foreground mask.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	fg              []bool
	neighborOffsets [][2]int
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)
