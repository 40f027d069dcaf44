// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/strokegraph/polynomial"
)

// ExamplePolynomial_RootCount counts the roots of (x-1)(x-2)(x-3)
// without solving for them.
func ExamplePolynomial_RootCount() {
	p := polynomial.MustNew(-6, 11, -6, 1)
	all, _ := p.RootCount(0, 4)
	middle, _ := p.RootCount(1.5, 2.5)
	fmt.Println(p)
	fmt.Println(all, middle)
	// Output:
	// x^3 - 6x^2 + 11x - 6
	// 3 1
}

// ExamplePolynomial_Divide shows long division with a remainder.
func ExamplePolynomial_Divide() {
	p := polynomial.MustNew(1, 0, 1) // x² + 1
	q, r, _ := p.Divide(polynomial.MustNew(-1, 1))
	fmt.Println(q, "|", r)
	// Output:
	// x + 1 | 2
}
