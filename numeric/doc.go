// SPDX-License-Identifier: MIT

// Package numeric holds the small real-function utilities used to measure
// fitted stroke curves:
//
//   - Newton: Newton's method with an oscillation guard.
//   - CircleRadius: radius of the circle through a chord subtending a given
//     arc length, obtained by inverting arc(r) with Newton's method.
//   - PeaksAndTroughs, LocalExtrema, Max: uniform sampling of a function on
//     [x1, x2] with n steps. A reversal is flagged only on a strict change of
//     direction; equal consecutive samples neither count nor reset the
//     tracked direction.
package numeric
