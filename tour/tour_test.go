package tour_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anyangle/batch"
	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/internal/testmaps"
	"github.com/katalvlaran/anyangle/tour"
)

// euclid builds a symmetric table from points on a plane.
func euclid(pts ...grid.Pos) [][]float64 {
	m := make([][]float64, len(pts))
	for i := range pts {
		m[i] = make([]float64, len(pts))
		for j := range pts {
			m[i][j] = grid.Distance(pts[i], pts[j])
		}
	}

	return m
}

// requirePermutation checks that order starts at 0 and visits want exactly once.
func requirePermutation(t *testing.T, order []int, want int) {
	t.Helper()
	require.Len(t, order, want)
	require.Equal(t, 0, order[0])
	seen := make(map[int]bool, want)
	for _, v := range order {
		require.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestPlan_Errors(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name string
		cost [][]float64
		err  error
	}{
		{"Empty", nil, tour.ErrTooSmall},
		{"Ragged", [][]float64{{0, 1}, {1}}, tour.ErrNonSquare},
		{"Negative", [][]float64{{0, -1}, {-1, 0}}, tour.ErrNegativeCost},
		{"NaN", [][]float64{{0, math.NaN()}, {1, 0}}, tour.ErrNegativeCost},
		{"Disconnected", [][]float64{{0, 1, 1}, {1, 0, inf}, {1, inf, 0}}, tour.ErrDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tour.Plan(tc.cost, tour.DefaultOptions())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPlan_AgentOnly(t *testing.T) {
	r, err := tour.Plan([][]float64{{0}}, tour.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Order)
	assert.Zero(t, r.Cost)
	assert.Empty(t, r.Unreachable)
}

// TestPlan_Line visits collinear targets in sweep order regardless of input order.
func TestPlan_Line(t *testing.T) {
	m := euclid(grid.Pos{X: 0}, grid.Pos{X: 3}, grid.Pos{X: 1}, grid.Pos{X: 4}, grid.Pos{X: 2})
	r, err := tour.Plan(m, tour.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 1, 3}, r.Order)
	assert.InDelta(t, 4.0, r.Cost, 1e-9)
}

// TestPlan_TwoOptFixesSeed uses points where the greedy seed crosses itself
// and one reversal removes the crossing.
func TestPlan_TwoOptFixesSeed(t *testing.T) {
	m := euclid(grid.Pos{X: 0, Y: 0}, grid.Pos{X: 4, Y: 3}, grid.Pos{X: 5, Y: 0}, grid.Pos{X: 5, Y: 6}, grid.Pos{X: 0, Y: 1})

	seed, err := tour.Plan(m, tour.Options{MaxIters: -1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1, 2, 3}, seed.Order)

	r, err := tour.Plan(m, tour.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 2, 1, 3}, r.Order)
	assert.Less(t, r.Cost, seed.Cost)
	assert.InDelta(t, 1+math.Sqrt(26)+math.Sqrt(10)+math.Sqrt(10), r.Cost, 1e-6)
}

func TestPlan_SkipsUnreachable(t *testing.T) {
	inf := math.Inf(1)
	m := [][]float64{
		{0, 2, inf, 1},
		{2, 0, inf, 1},
		{inf, inf, 0, inf},
		{1, 1, inf, 0},
	}
	r, err := tour.Plan(m, tour.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1}, r.Order)
	assert.Equal(t, []int{2}, r.Unreachable)
	assert.InDelta(t, 2.0, r.Cost, 1e-9)
}

// TestPlan_FromBatch plans over the cost table of a batch run on the demo map.
func TestPlan_FromBatch(t *testing.T) {
	targets := []grid.Pos{{X: 68, Y: 18}, {X: 10, Y: 10}, {X: 30, Y: 3}, {X: 60, Y: 15}, {X: 3, Y: 17}}
	rep, err := batch.Run(context.Background(), testmaps.DemoGrid(), grid.Pos{X: 1, Y: 1}, targets,
		batch.WithBackend(batch.Arena{}))
	require.NoError(t, err)

	m := rep.CostMatrix()
	r, err := tour.Plan(m, tour.DefaultOptions())
	require.NoError(t, err)
	requirePermutation(t, r.Order, len(targets)+1)
	assert.Empty(t, r.Unreachable)
	assert.InDelta(t, tour.Cost(m, r.Order), r.Cost, 1e-9)

	// Never worse than visiting targets in input order.
	naive := []int{0, 1, 2, 3, 4, 5}
	assert.LessOrEqual(t, r.Cost, tour.Cost(m, naive)+1e-9)
}
