// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strokegraph/gridgraph"
)

// BenchmarkConnectedComponents measures component labelling on a random 1000×1000 raster.
func BenchmarkConnectedComponents(b *testing.B) {
	const w, h = 1000, 1000
	rng := rand.New(rand.NewSource(42))
	gg, err := gridgraph.FromPredicate(w, h, func(int, int) bool { return rng.Intn(3) == 0 }, gridgraph.Conn8)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}
