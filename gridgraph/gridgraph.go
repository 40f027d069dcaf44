// SPDX-License-Identifier: MIT

package gridgraph

import (
	"image"
	"image/color"
)

// NewGridGraph builds a GridGraph from a rectangular 2D slice: values[y][x]
// is ink when it is ≥ opts.ForegroundThreshold.
// Returns ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	h := len(values)
	w := 0
	if h > 0 {
		w = len(values[0])
	}
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	return FromPredicate(w, h, func(x, y int) bool {
		return values[y][x] >= opts.ForegroundThreshold
	}, opts.Conn)
}

// FromPredicate builds a w×h GridGraph where cell (x,y) is ink iff isInk(x,y).
// The predicate is evaluated once per cell, row by row.
func FromPredicate(w, h int, isInk func(x, y int) bool, conn Connectivity) (*GridGraph, error) {
	if w < 0 || h < 0 {
		return nil, ErrNegativeSize
	}
	if isInk == nil {
		return nil, ErrNilImage
	}
	if w == 0 || h == 0 {
		w, h = 0, 0
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            conn,
		fg:              make([]bool, w*h),
		neighborOffsets: offsets4,
	}
	if conn == Conn8 {
		gg.neighborOffsets = offsets8
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gg.fg[gg.index(x, y)] = isInk(x, y)
		}
	}

	return gg, nil
}

// FromImage builds a GridGraph from img: a pixel is ink when its 16-bit
// luminance is below threshold·0xffff and its alpha is non-zero, i.e. dark
// strokes on a light background. threshold is clamped to [0, 1].
func FromImage(img image.Image, threshold float64, conn Connectivity) (*GridGraph, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	threshold = min(max(threshold, 0), 1)
	cut := uint32(threshold * 0xffff)
	b := img.Bounds()

	return FromPredicate(b.Dx(), b.Dy(), func(x, y int) bool {
		c := img.At(b.Min.X+x, b.Min.Y+y)
		if _, _, _, a := c.RGBA(); a == 0 {
			return false
		}
		gray := color.Gray16Model.Convert(c).(color.Gray16)
		return uint32(gray.Y) < cut
	}, conn)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsForeground reports whether (x,y) is an ink cell; out-of-bounds cells are background.
func (gg *GridGraph) IsForeground(x, y int) bool {
	return gg.InBounds(x, y) && gg.fg[gg.index(x, y)]
}

// ForegroundCount returns the number of ink cells.
func (gg *GridGraph) ForegroundCount() int {
	n := 0
	for _, f := range gg.fg {
		if f {
			n++
		}
	}

	return n
}

// NeighborOffsets returns the neighbor offsets for gg.Conn.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
