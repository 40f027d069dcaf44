// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strokegraph/matrix"
)

// ExampleInverse inverts a 2×2 matrix that needs a row swap.
func ExampleInverse() {
	m, _ := matrix.NewFromRows([][]float64{{0, 2}, {1, 0}})
	inv, _ := matrix.Inverse(m)
	fmt.Print(inv)
	// Output:
	// [0, 1]
	// [0.5, 0]
}
