package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/anyangle/grid"
)

// BenchmarkLineOfSight measures long diagonal raycasts on a 1000×1000 grid
// with 10% random walls.
// Complexity: O(W+H) per ray.
func BenchmarkLineOfSight(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	cells := make([]int, n*n)
	for i := range cells {
		if rng.Intn(10) == 0 {
			cells[i] = grid.Wall
		}
	}
	g, err := grid.New(cells, n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	p, q := grid.Pos{X: 0, Y: 0}, grid.Pos{X: n - 1, Y: n / 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.LineOfSight(p, q)
	}
}

// BenchmarkComponents labels a 1000×1000 grid with 30% random walls.
// Complexity: O(W×H×8).
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(7))
	cells := make([]int, n*n)
	for i := range cells {
		if rng.Intn(10) < 3 {
			cells[i] = grid.Wall
		}
	}
	g, err := grid.New(cells, n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
