package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/geom"
	"github.com/katalvlaran/beaconzone/occupancy"
	"github.com/katalvlaran/beaconzone/parse"
	"github.com/katalvlaran/beaconzone/render"
)

// TestGrid_MatchesOracle checks the rendered grid agrees with Covers and
// the occupancy priorities.
func TestGrid_MatchesOracle(t *testing.T) {
	pairs, err := parse.File("../testdata/example.txt")
	require.NoError(t, err)

	g, err := render.Grid(pairs, render.DefaultOptions().MaxCells)
	require.NoError(t, err)

	for _, p := range pairs {
		k, ok := g.Kind(p.Sensor.Point)
		require.True(t, ok)
		require.Equal(t, occupancy.Sensor, k)
		k, _ = g.Kind(p.Beacon.Point)
		require.Equal(t, occupancy.Beacon, k)
	}

	lo, hi, ok := g.Bounds()
	require.True(t, ok)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			q := geom.Point{X: x, Y: y}
			_, recorded := g.Kind(q)
			require.Equal(t, coverage.AnyCovers(pairs, q), recorded, "cell %v", q)
		}
	}
	require.Equal(t, 26, g.Row(10).NonBeaconCount())
	_, gapRecorded := g.Kind(geom.Point{X: 14, Y: 11})
	require.False(t, gapRecorded)
}

func TestGrid_TooLarge(t *testing.T) {
	pairs := []coverage.Pair{coverage.NewPair(geom.Point{}, geom.Point{X: 1000})}
	_, err := render.Grid(pairs, 10_000)
	require.ErrorIs(t, err, render.ErrTooLarge)
}

// TestSave writes a PNG of the worked example with its gap.
func TestSave(t *testing.T) {
	pairs, err := parse.File("../testdata/example.txt")
	require.NoError(t, err)

	opts := render.DefaultOptions()
	opts.Gap = &geom.Point{X: 14, Y: 11}
	out := filepath.Join(t.TempDir(), "coverage.png")
	require.NoError(t, render.Save(pairs, out, opts))

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}
