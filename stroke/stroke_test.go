// SPDX-License-Identifier: MIT

package stroke_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/matrix"
	"github.com/katalvlaran/strokegraph/pixelgraph"
	"github.com/katalvlaran/strokegraph/stroke"
)

// grid builds a GridGraph from rows where '#' marks ink.
func grid(t *testing.T, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	gg, err := gridgraph.FromPredicate(w, len(rows), func(x, y int) bool {
		return rows[y][x] == '#'
	}, gridgraph.Conn8)
	require.NoError(t, err)

	return gg
}

var ring = []string{
	".###.",
	"#...#",
	"#...#",
	"#...#",
	".###.",
}

//----------------------------------------------------------------------------//
// Analyze
//----------------------------------------------------------------------------//

func TestAnalyze_Errors(t *testing.T) {
	_, err := stroke.Analyze(nil)
	assert.ErrorIs(t, err, pixelgraph.ErrNilGrid)

	gg := grid(t, "#")
	_, err = stroke.Analyze(gg, stroke.WithMaxLoopSegments(-1))
	assert.ErrorIs(t, err, stroke.ErrBadOption)
	_, err = stroke.Analyze(gg, stroke.WithSummaryDegree(-2))
	assert.ErrorIs(t, err, stroke.ErrBadOption)
}

func TestAnalyze_Empty(t *testing.T) {
	sk, err := stroke.Analyze(grid(t, "...", "..."))
	require.NoError(t, err)

	assert.Empty(t, sk.Segments())
	assert.Empty(t, sk.Loops())
	assert.Equal(t, 0, sk.Components())
	assert.Zero(t, sk.TotalDistance())
	assert.Zero(t, sk.MaxCurvature())
	assert.Empty(t, sk.Branches())
	_, ok := sk.Longest()
	assert.False(t, ok)

	sum, err := sk.LongestSummary()
	require.NoError(t, err)
	assert.Nil(t, sum)
}

func TestAnalyze_Ring(t *testing.T) {
	sk, err := stroke.Analyze(grid(t, ring...))
	require.NoError(t, err)

	require.Len(t, sk.Segments(), 1)
	require.Len(t, sk.Loops(), 1)
	assert.Equal(t, 1, sk.Components())
	assert.Equal(t, 12, sk.Loops()[0].Length())
	assert.InDelta(t, 8+4*math.Sqrt2, sk.TotalDistance(), 1e-9)
	assert.Equal(t, 12, sk.Graph().Len())

	longest, ok := sk.Longest()
	require.True(t, ok)
	assert.True(t, longest.IsLoop())
}

func TestAnalyze_LoopLengthFilter(t *testing.T) {
	// a small diamond ring and two far specks spanning a 199×199 box
	const size = 200
	gg, err := gridgraph.FromPredicate(size, size, func(x, y int) bool {
		switch {
		case x == 0 && y == 0, x == size-1 && y == size-1:
			return true
		case y == 10 || y == 12:
			return x == 11
		case y == 11:
			return x == 10 || x == 12
		}
		return false
	}, gridgraph.Conn8)
	require.NoError(t, err)

	// the 4-edge loop is below min(199·199·0.0002, 5)
	sk, err := stroke.Analyze(gg, stroke.WithPruneNoise(false))
	require.NoError(t, err)
	assert.Equal(t, 3, sk.Components())
	assert.Len(t, sk.Segments(), 3)
	assert.Empty(t, sk.Loops())

	// pruning removes the specks, the box shrinks and the loop is kept
	sk, err = stroke.Analyze(gg)
	require.NoError(t, err)
	assert.Len(t, sk.Segments(), 1)
	require.Len(t, sk.Loops(), 1)
	assert.Equal(t, 4, sk.Loops()[0].Length())
}

func TestAnalyze_Branches(t *testing.T) {
	sk, err := stroke.Analyze(grid(t,
		"....#....",
		"....#....",
		"..#####..",
		"....#....",
		"....#....",
	), stroke.WithPruneNoise(false))
	require.NoError(t, err)

	require.Len(t, sk.Branches(), 1)
	assert.Len(t, sk.Segments(), 4)
	assert.Empty(t, sk.Loops())
	assert.Zero(t, sk.MaxCurvature())
}

//----------------------------------------------------------------------------//
// LongestSummary
//----------------------------------------------------------------------------//

func TestLongestSummary_Directions(t *testing.T) {
	var row []byte
	for i := 0; i < 21; i++ {
		row = append(row, '#')
	}
	col := make([]string, 21)
	for i := range col {
		col[i] = "#"
	}

	tests := []struct {
		name  string
		rows  []string
		angle float64
	}{
		{"Horizontal", []string{string(row)}, 0},
		{"Vertical", col, math.Pi / 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sk, err := stroke.Analyze(grid(t, tc.rows...))
			require.NoError(t, err)
			longest, ok := sk.Longest()
			require.True(t, ok)
			assert.InDelta(t, 20, longest.Distance(), 1e-9)

			sum, err := sk.LongestSummary()
			require.NoError(t, err)
			require.NotNil(t, sum)
			assert.Equal(t, stroke.DefaultSummaryDegree, sum.Degree)
			assert.InDelta(t, tc.angle, sum.StartAngle, 1e-6)
			assert.InDelta(t, tc.angle, sum.EndAngle, 1e-6)
		})
	}
}

func TestLongestSummary_TooShort(t *testing.T) {
	sk, err := stroke.Analyze(grid(t, "...", ".#.", "..."))
	require.NoError(t, err)
	_, ok := sk.Longest()
	require.True(t, ok)

	sum, err := sk.LongestSummary()
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Nil(t, sum)

	// three samples at arc lengths 0, √2, 2√2 cannot fix a quartic
	sk, err = stroke.Analyze(grid(t, "#..", ".#.", "..#"))
	require.NoError(t, err)
	longest, ok := sk.Longest()
	require.True(t, ok)
	require.Equal(t, 2, longest.Length())
	sum, err = sk.LongestSummary()
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Nil(t, sum)

	// degree 0 fits a single sample
	sk, err = stroke.Analyze(grid(t, "...", ".#.", "..."), stroke.WithSummaryDegree(0))
	require.NoError(t, err)
	_, err = sk.LongestSummary()
	assert.Error(t, err, "a zero-length segment has no interval to sample")
}

//----------------------------------------------------------------------------//
// Logging
//----------------------------------------------------------------------------//

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	stroke.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { stroke.SetLogger(nil) })

	_, err := stroke.Analyze(grid(t, ring...))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "pixel graph built")
	assert.Contains(t, buf.String(), "loops=1")

	stroke.SetLogger(nil)
	buf.Reset()
	_, err = stroke.Analyze(grid(t, ring...))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.False(t, stroke.Logger().Enabled(t.Context(), slog.LevelError))
}
