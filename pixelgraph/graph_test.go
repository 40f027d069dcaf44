// SPDX-License-Identifier: MIT

package pixelgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/pixelgraph"
)

// raster builds a Graph from rows where '#' marks ink.
func raster(t *testing.T, rows ...string) *pixelgraph.Graph {
	t.Helper()
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	gg, err := gridgraph.FromPredicate(w, len(rows), func(x, y int) bool {
		return rows[y][x] == '#'
	}, gridgraph.Conn8)
	require.NoError(t, err)
	g, err := pixelgraph.FromGrid(gg)
	require.NoError(t, err)

	return g
}

// path adds nodes at pts and links them in order, returning their ids.
func path(t *testing.T, g *pixelgraph.Graph, pts ...pixelgraph.Point) []pixelgraph.NodeID {
	t.Helper()
	ids := make([]pixelgraph.NodeID, len(pts))
	for i, p := range pts {
		ids[i] = g.AddNode(p.X, p.Y)
		if i > 0 {
			require.NoError(t, g.Connect(ids[i-1], ids[i]))
		}
	}

	return ids
}

func pt(x, y float64) pixelgraph.Point { return pixelgraph.Point{X: x, Y: y} }

//----------------------------------------------------------------------------//
// Arena
//----------------------------------------------------------------------------//

func TestGraph_ConnectRemove(t *testing.T) {
	g := pixelgraph.New()
	a := g.AddNode(0, 0)
	b := g.AddNode(1, 0)
	c := g.AddNode(2, 0)

	require.NoError(t, g.Connect(a, b))
	require.NoError(t, g.Connect(b, a)) // no-op
	require.NoError(t, g.Connect(c, b))
	assert.Equal(t, []pixelgraph.NodeID{a, c}, g.Neighbors(b))
	assert.Equal(t, 2, g.Degree(b))

	assert.ErrorIs(t, g.Connect(a, a), pixelgraph.ErrSelfEdge)
	assert.ErrorIs(t, g.Connect(a, 99), pixelgraph.ErrUnknownNode)

	require.NoError(t, g.Remove(b))
	assert.False(t, g.Contains(b))
	assert.Equal(t, 0, g.Degree(a))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []pixelgraph.NodeID{a, c}, g.NodeIDs())
	assert.ErrorIs(t, g.Remove(b), pixelgraph.ErrUnknownNode)
	_, err := g.Position(b)
	assert.ErrorIs(t, err, pixelgraph.ErrUnknownNode)

	// ids are never reused
	d := g.AddNode(5, 5)
	assert.Equal(t, pixelgraph.NodeID(3), d)

	require.NoError(t, g.Connect(a, c))
	require.NoError(t, g.Disconnect(c, a))
	assert.Equal(t, 0, g.Degree(c))
}

func TestGraph_BoundsAndDegrees(t *testing.T) {
	g := pixelgraph.New()
	assert.Equal(t, pixelgraph.Rect{}, g.Bounds())

	ids := path(t, g, pt(1, 2), pt(4, 2), pt(4, 7))
	g.AddNode(-1, 3)

	r := g.Bounds()
	assert.Equal(t, pt(-1, 2), r.Min)
	assert.Equal(t, pt(4, 7), r.Max)
	assert.InDelta(t, 5, r.Width(), 1e-12)
	assert.InDelta(t, 5, r.Height(), 1e-12)

	assert.Equal(t, []pixelgraph.NodeID{ids[0], ids[2]}, g.VerticesByDegree(1, 1))
	assert.Len(t, g.VerticesByDegree(0, 0), 1)
	assert.Len(t, g.Points(), 4)
}

//----------------------------------------------------------------------------//
// FromGrid
//----------------------------------------------------------------------------//

func TestFromGrid_DiagonalRule(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		degrees []int // by node id, row-major
	}{
		{"LoneDiagonal", []string{"#.", ".#"}, []int{1, 1}},
		{"AntiDiagonal", []string{".#", "#."}, []int{1, 1}},
		{"Corner", []string{"##", ".#"}, []int{1, 2, 1}},
		{"Full", []string{"##", "##"}, []int{2, 2, 2, 2}},
		{"Gap", []string{"#.#"}, []int{0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := raster(t, tc.rows...)
			require.Equal(t, len(tc.degrees), g.Len())
			for i, want := range tc.degrees {
				assert.Equal(t, want, g.Degree(pixelgraph.NodeID(i)), "node %d", i)
			}
		})
	}
}

func TestFromGrid_EmptyAndNil(t *testing.T) {
	g := raster(t)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Segments())
	loops, err := g.Loops(pixelgraph.DefaultMaxLoopSegments)
	require.NoError(t, err)
	assert.Empty(t, loops)

	_, err = pixelgraph.FromGrid(nil)
	assert.ErrorIs(t, err, pixelgraph.ErrNilGrid)
}

func TestFromGrid_Positions(t *testing.T) {
	g := raster(t, "..", ".#")
	require.Equal(t, 1, g.Len())
	p, err := g.Position(0)
	require.NoError(t, err)
	assert.Equal(t, pt(1, 1), p)
}
