// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over an undirected multigraph
// addressed by integer vertex and edge ids, with back-edge cycle
// reconstruction.
//
// What:
//
//   - BackEdgeCycles: runs one DFS tree per unvisited root, records for every
//     visited vertex the edge used to reach it (its tree parent edge), and on
//     each edge to an already-visited vertex rebuilds the cycle by walking both
//     endpoints' parent chains to their first common ancestor.
//   - Self-loops and parallel edges are first-class: a self-loop is a cycle of
//     one edge, two parallel edges form a cycle of two.
//   - The traversal uses an explicit stack, so path length is not bounded by
//     the goroutine stack. MaxDepth optionally stops descending.
//
// Why:
//
//   - Skeleton segments are edges of a multigraph on branch points; the
//     cycles found here are the candidate enclosed loops of a stroke.
//
// Determinism:
//
//   - Incident edges are visited in the order the Multigraph returns them.
//   - Each cycle is returned as a sorted, duplicate-free edge id list, and the
//     cycle list is sorted by signature (see JoinSig).
//
// Complexity:
//
//   - Time O(V + E + B·L) for B back edges and cycles of length L; Memory O(V + E).
//
// Errors:
//
//   - ErrGraphNil: nil Multigraph.
//   - ErrBadEdge:  an edge id is negative.
package dfs
