// SPDX-License-Identifier: MIT

// Package strokegraph turns binary stroke images into skeleton graphs and
// measures their geometry with exact polynomial algebra.
//
// 🚀 What is strokegraph?
//
//	A small, pure-Go toolkit that brings together:
//		• Raster input: grids from [][]int, predicates or image.Image
//		• Skeletons: pixel graphs reduced to segments and elementary loops
//		• Algebra: polynomials, rational functions, Sturm root counting
//		• Fitting: least-squares regression and parametric curve analysis
//		• Numerics: Newton iteration, arc radius, sampled extrema
//
// Packages, leaves first:
//
//	polynomial/ – real polynomials, Sturm sequences, rational functions
//	matrix/     – dense float matrices, elimination, inverse
//	regression/ – least-squares polynomial fits with R²
//	numeric/    – Newton solver, circle radius from arc & chord, sampling
//	curve/      – x(t), y(t) fits: slope, curvature, inflections, turns
//	gridgraph/  – binary rasters and connected ink components
//	dfs/        – back-edge cycle search over integer multigraphs
//	pixelgraph/ – node arena, reductions, segments, loops, measurements
//	stroke/     – one-call pipeline and the Skeleton summary
//
// Quick ASCII example:
//
//	 .###.
//	 #...#      one segment, closed on itself,
//	 #...#  →   12 edges long, one loop
//	 #...#
//	 .###.
//
// The strokegraph command (cmd/strokegraph) runs the pipeline on image
// files and prints YAML reports.
//
//	go install github.com/katalvlaran/strokegraph/cmd/strokegraph@latest
package strokegraph
