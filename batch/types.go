package batch

import (
	"errors"
	"time"

	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// Sentinel errors for batch planning.
var (
	// ErrNoTargets indicates an empty target list.
	ErrNoTargets = errors.New("batch: at least one target is required")

	// ErrOddTargets indicates a flattened target list of odd length.
	ErrOddTargets = errors.New("batch: flattened targets must hold x,y pairs")

	// ErrBadPosition indicates a position encoding that is not exactly (x, y).
	ErrBadPosition = errors.New("batch: position must have exactly two components")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("batch: grid is nil")

	// ErrUnknownBackend indicates an unsupported backend name.
	ErrUnknownBackend = errors.New("batch: unknown backend")
)

// Task is one start/goal query. StartIdx and GoalIdx index the point set
// {0 = agent, 1..n = targets}; Index is the task's slot in the result.
type Task struct {
	Index    int
	StartIdx int
	GoalIdx  int
	Start    grid.Pos
	Goal     grid.Pos
}

// Outcome is the result of one task: Path from start to goal inclusive,
// or nil with Cost = +Inf when unreachable.
type Outcome struct {
	Path  []grid.Pos
	Cost  float64
	Stats lazytheta.Stats
}

// Found reports whether the task produced a path.
func (o Outcome) Found() bool { return o.Path != nil }

// Report collects the outcomes of a run, index-aligned with Tasks.
type Report struct {
	Tasks    []Task
	Outcomes []Outcome
	Backend  string
	Elapsed  time.Duration
}

// Paths returns the path of every task in task order.
func (r *Report) Paths() [][]grid.Pos {
	paths := make([][]grid.Pos, len(r.Outcomes))
	for i, o := range r.Outcomes {
		paths[i] = o.Path
	}

	return paths
}

// Costs returns the cost of every task in task order.
func (r *Report) Costs() []float64 {
	costs := make([]float64, len(r.Outcomes))
	for i, o := range r.Outcomes {
		costs[i] = o.Cost
	}

	return costs
}

// HostLock is the execution lock of an embedding runtime. Parallel backends
// call Release once before fanning out and Reacquire once after joining.
type HostLock interface {
	Release()
	Reacquire()
}

// NopLock is a HostLock that does nothing; the default.
type NopLock struct{}

// Release does nothing.
func (NopLock) Release() {}

// Reacquire does nothing.
func (NopLock) Reacquire() {}
