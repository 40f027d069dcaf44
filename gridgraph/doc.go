// SPDX-License-Identifier: MIT

// Package gridgraph holds the binary raster a stroke skeleton is built from:
// a width×height grid of cells, each either foreground (ink) or background.
//
// What:
//
//   - GridGraph wraps the foreground mask, built from an integer grid with a
//     ForegroundThreshold, from a membership predicate, or from an image by a
//     luminance cut.
//   - Identifies connected components of foreground cells under Conn4 or
//     Conn8 adjacency (ink "islands").
//
// Why:
//
//   - The pixel graph only needs "is (x, y) ink?"; keeping the raster behind
//     this type lets any upstream thresholding feed the same pipeline.
//
// Complexity:
//
//   - Construction: O(W×H). ConnectedComponents: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrNonRectangular: input rows of differing lengths.
//   - ErrNegativeSize:   negative width or height.
//   - ErrNilImage:       nil image or predicate.
//
// An empty grid (no rows, or no columns) is valid and has no foreground.
package gridgraph
