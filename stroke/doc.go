// SPDX-License-Identifier: MIT

// Package stroke runs the full skeleton pipeline on a binary raster and
// exposes the measurements a stroke classifier consumes.
//
// Pipeline (Analyze):
//
//  1. pixelgraph.FromGrid builds one node per ink pixel.
//  2. CollapseRectangles folds filled blocks into centroids.
//  3. CollapseShortConnectors merges short branch-to-branch runs.
//  4. ConnectNearbyEnds bridges small gaps between free ends.
//  5. PruneNoise (optional) drops spurs and short parallels.
//  6. Segments and Loops are extracted; loops shorter than
//     min(area·0.0002, 5) edges are discarded.
//
// The resulting Skeleton is a snapshot: it owns its Graph, and mutating that
// graph through Skeleton.Graph invalidates the stored segments and loops.
// A Skeleton is safe for concurrent reads.
package stroke
