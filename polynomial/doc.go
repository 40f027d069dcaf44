// SPDX-License-Identifier: MIT

// Package polynomial implements exact dense-coefficient polynomial algebra
// and ratios of polynomials, as used to analyze curves fitted along a
// stroke skeleton.
//
// What:
//
//   - Polynomial: immutable value in canonical trimmed form (ascending powers).
//     The zero polynomial has a single 0 coefficient and degree -1.
//   - Arithmetic (Add, Sub, Negate, Scale, Mul), calculus (Derivative,
//     AntiDerivative, Average) and long division (Divide).
//   - Sturm-sequence real-root counting on half-open intervals (RootCount),
//     and RootSeparators, which returns one point per distinct root such that
//     consecutive points bound exactly one root each.
//   - Rational: numerator/denominator pair with quotient-rule differentiation.
//     A derivative carries a "non-negative denominator" flag (the denominator
//     is a perfect square) and SignChanges then reads sign flips from the
//     numerator alone.
//
// Why:
//
//   - Counting inflections or curvature reversals along a fitted curve needs
//     the sign structure of a function, never the root values themselves.
//
// Errors:
//
//   - ErrNonFinite  : construction with NaN/±Inf coefficients.
//   - ErrZeroDivisor: long division by the zero polynomial.
//   - ErrBadInterval: an interval query with x2 <= x1 (or NaN bounds).
//
// Complexity:
//
//   - Add/Sub: O(n). Mul: O(n·m). Divide: O(n·m).
//   - SturmSequence: O(n²). RootCount: O(n²) per endpoint.
//
// Example:
//
//	p := polynomial.MustNew(-6, 11, -6, 1) // (x-1)(x-2)(x-3)
//	n, _ := p.RootCount(0, 4)              // 3
package polynomial
