// SPDX-License-Identifier: MIT

// Package pixelgraph turns a binary raster into a stroke skeleton: a graph of
// nodes at (possibly averaged) pixel positions, the maximal paths between its
// branch points and the elementary loops those paths enclose.
//
// What:
//
//   - Graph is an index-addressed arena of nodes with sorted adjacency sets.
//     NodeIDs are stable; removed nodes leave a dead slot and are never reused.
//   - FromGrid links foreground pixels 4-connectedly and adds a diagonal only
//     where both orthogonal pixels between the pair are background.
//   - Reduction passes, each run to a fixed point:
//     CollapseRectangles, CollapseShortConnectors, ConnectNearbyEnds and
//     PruneNoise.
//   - Segments traces maximal paths between nodes of degree ≠ 2, rings with
//     no branch point, and isolated nodes.
//   - Loops returns the elementary cycles of the segment multigraph.
//   - Segment exposes measurements: arc length, directional statistics,
//     curvature estimates and polynomial fits against arc length.
//
// Staleness:
//
//	Segments and Loops are snapshots. Any mutation of the Graph (a reduction
//	pass, Connect, Remove, RemoveSegment) invalidates previously returned
//	values; fetch them again afterwards. Stale use is not detected.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Concurrent reads of an
//	unchanging Graph are fine.
//
// Errors:
//
//	ErrUnknownNode - id is out of range or refers to a removed node.
//	ErrSelfEdge    - Connect(a, a).
//	ErrNilGrid     - FromGrid(nil).
//	ErrBadRange    - FitWithin with tMin > tMax or a NaN bound.
package pixelgraph
