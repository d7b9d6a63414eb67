package batch

import (
	"fmt"

	"github.com/katalvlaran/anyangle/combin"
	"github.com/katalvlaran/anyangle/grid"
)

// ParsePos decodes an (x, y) pair. Returns ErrBadPosition if len(v) != 2.
func ParsePos(v []int) (grid.Pos, error) {
	if len(v) != 2 {
		return grid.Pos{}, fmt.Errorf("%w: got %d values", ErrBadPosition, len(v))
	}

	return grid.Pos{X: v[0], Y: v[1]}, nil
}

// ParseTargets decodes a flattened x0,y0,x1,y1,... target list.
// Returns ErrNoTargets if flat is empty and ErrOddTargets if its length is odd.
func ParseTargets(flat []int) ([]grid.Pos, error) {
	if len(flat) == 0 {
		return nil, ErrNoTargets
	}
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddTargets, len(flat))
	}
	targets := make([]grid.Pos, len(flat)/2)
	for i := range targets {
		targets[i] = grid.Pos{X: flat[2*i], Y: flat[2*i+1]}
	}

	return targets, nil
}

// Points returns the indexed point set {0 = agent, 1..n = targets}.
func Points(agent grid.Pos, targets []grid.Pos) []grid.Pos {
	pts := make([]grid.Pos, 0, len(targets)+1)
	pts = append(pts, agent)

	return append(pts, targets...)
}

// BuildTasks validates agent and targets against g and returns every
// unordered pair over {agent} ∪ targets as a Task, in combin.Combinations
// order. Validation happens before anything else so a malformed batch never
// starts searching.
//
// Errors: ErrNilGrid, ErrNoTargets, grid.ErrOutOfBounds (with the point index).
//
// Complexity: O(n²) for n targets.
func BuildTasks(g *grid.Grid, agent grid.Pos, targets []grid.Pos) ([]Task, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	pts := Points(agent, targets)
	if err := checkBounds(g, pts); err != nil {
		return nil, err
	}

	flat, err := combin.Combinations(len(pts), 2)
	if err != nil {
		return nil, fmt.Errorf("batch: pair generation: %w", err)
	}
	tasks := make([]Task, len(flat)/2)
	for k := range tasks {
		si, gi := flat[2*k], flat[2*k+1]
		tasks[k] = Task{
			Index:    k,
			StartIdx: si,
			GoalIdx:  gi,
			Start:    pts[si],
			Goal:     pts[gi],
		}
	}

	return tasks, nil
}

// checkBounds reports the first point outside g.
func checkBounds(g *grid.Grid, pts []grid.Pos) error {
	for i, p := range pts {
		if !g.InBounds(p.X, p.Y) {
			return fmt.Errorf("batch: point %d (%d,%d): %w", i, p.X, p.Y, grid.ErrOutOfBounds)
		}
	}

	return nil
}
