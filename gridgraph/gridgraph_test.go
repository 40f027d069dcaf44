// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokegraph/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNewGridGraph_NonRectangular(t *testing.T) {
	_, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1}}, gridgraph.DefaultGridOptions())
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestNewGridGraph_Empty(t *testing.T) {
	for _, in := range [][][]int{nil, {}, {{}, {}}} {
		gg, err := gridgraph.NewGridGraph(in, gridgraph.DefaultGridOptions())
		require.NoError(t, err)
		assert.Equal(t, 0, gg.Width)
		assert.Equal(t, 0, gg.Height)
		assert.Equal(t, 0, gg.ForegroundCount())
		assert.Empty(t, gg.ConnectedComponents())
	}
}

func TestNewGridGraph_Threshold(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.ForegroundThreshold = 5
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 4, 5},
		{9, 1, 2},
	}, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.False(t, gg.IsForeground(1, 0))
	assert.True(t, gg.IsForeground(2, 0))
	assert.True(t, gg.IsForeground(0, 1))
	assert.Equal(t, 2, gg.ForegroundCount())
}

func TestFromPredicate_Errors(t *testing.T) {
	_, err := gridgraph.FromPredicate(-1, 2, func(int, int) bool { return true }, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNegativeSize)
	_, err = gridgraph.FromPredicate(2, 2, nil, gridgraph.Conn4)
	assert.ErrorIs(t, err, gridgraph.ErrNilImage)
}

func TestInBoundsAndCoordinate(t *testing.T) {
	gg, err := gridgraph.FromPredicate(4, 3, func(x, y int) bool { return x == y }, gridgraph.Conn4)
	require.NoError(t, err)

	assert.True(t, gg.InBounds(0, 0))
	assert.True(t, gg.InBounds(3, 2))
	assert.False(t, gg.InBounds(4, 0))
	assert.False(t, gg.InBounds(0, -1))
	assert.False(t, gg.IsForeground(-1, -1))

	x, y := gg.Coordinate(9)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

func TestFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	for y := 20; y < 22; y++ {
		for x := 10; x < 13; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(10, 20, color.Black)
	img.Set(12, 21, color.Gray{Y: 100})
	img.Set(11, 21, color.NRGBA{}) // transparent

	gg, err := gridgraph.FromImage(img, 0.5, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, 3, gg.Width)
	assert.Equal(t, 2, gg.Height)
	assert.True(t, gg.IsForeground(0, 0))
	assert.True(t, gg.IsForeground(2, 1))
	assert.False(t, gg.IsForeground(1, 1))
	assert.Equal(t, 2, gg.ForegroundCount())

	_, err = gridgraph.FromImage(nil, 0.5, gridgraph.Conn8)
	assert.ErrorIs(t, err, gridgraph.ErrNilImage)
}

//----------------------------------------------------------------------------//
// Connected components
//----------------------------------------------------------------------------//

func TestConnectedComponents(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 0, 0},
	}
	tests := []struct {
		name  string
		conn  gridgraph.Connectivity
		sizes []int
	}{
		{"Conn4", gridgraph.Conn4, []int{1, 2, 1, 2}},
		{"Conn8", gridgraph.Conn8, []int{2, 2, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := gridgraph.DefaultGridOptions()
			opts.Conn = tc.conn
			gg, err := gridgraph.NewGridGraph(grid, opts)
			require.NoError(t, err)

			comps := gg.ConnectedComponents()
			sizes := make([]int, len(comps))
			for i, c := range comps {
				sizes[i] = len(c)
			}
			assert.Equal(t, tc.sizes, sizes)
		})
	}
}
