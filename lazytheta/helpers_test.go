package lazytheta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/internal/testmaps"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// pathLength sums Euclidean segment lengths along path.
func pathLength(path []grid.Pos) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += grid.Distance(path[i-1], path[i])
	}

	return total
}

// requireValidPath checks the invariants every found path must satisfy:
// endpoints, free waypoints, visible segments and a cost equal to the
// polyline length.
func requireValidPath(t *testing.T, g *grid.Grid, res lazytheta.Result, start, goal grid.Pos) {
	t.Helper()
	require.True(t, res.Found, "expected a path")
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0], "first waypoint")
	require.Equal(t, goal, res.Path[len(res.Path)-1], "last waypoint")
	for i, p := range res.Path {
		require.True(t, g.Passable(p.X, p.Y), "waypoint %d %v is a wall\n%s", i, p, testmaps.Render(g, res.Path))
		if i > 0 {
			require.True(t, g.LineOfSight(res.Path[i-1], p),
				"segment %v→%v crosses a wall\n%s", res.Path[i-1], p, testmaps.Render(g, res.Path))
		}
	}
	require.InDelta(t, pathLength(res.Path), res.Cost, 1e-9)
}
