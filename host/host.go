package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/anyangle/batch"
	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// MutexLock adapts a held sync.Locker to batch.HostLock:
// Release unlocks it and Reacquire locks it again.
type MutexLock struct {
	L sync.Locker
}

// Release unlocks the wrapped locker.
func (m MutexLock) Release() { m.L.Unlock() }

// Reacquire locks the wrapped locker.
func (m MutexLock) Reacquire() { m.L.Lock() }

// Boundary is the set of entry points bound to one host.
type Boundary struct {
	// Lock is the host execution lock; nil means batch.NopLock.
	Lock batch.HostLock
	// Options are applied to every batch call before the backend choice.
	Options []batch.ConfigOption
}

// FindPath answers a single query. start and end are [x, y].
//
// Returns the flattened path and its cost; an unreachable goal yields an
// empty path and +Inf. Malformed positions return batch.ErrBadPosition,
// a malformed grid the grid constructor error, and positions outside the
// grid grid.ErrOutOfBounds.
func FindPath(start, end, cells []int, width, height int) ([]int, float64, error) {
	g, err := grid.New(cells, width, height)
	if err != nil {
		return nil, 0, err
	}
	s, err := batch.ParsePos(start)
	if err != nil {
		return nil, 0, fmt.Errorf("host: start: %w", err)
	}
	e, err := batch.ParsePos(end)
	if err != nil {
		return nil, 0, fmt.Errorf("host: end: %w", err)
	}

	res, err := lazytheta.FindPath(g, s, e)
	if err != nil {
		return nil, 0, err
	}

	return Flatten(res.Path), res.Cost, nil
}

// FindPathMany solves every pair over {agent} ∪ targets sequentially.
func (b Boundary) FindPathMany(agent, targets, cells []int, width, height int) ([][]int, []float64, error) {
	return b.many(batch.Sequential{}, agent, targets, cells, width, height)
}

// FindPathManyArena solves every pair on a fixed-size arena sized to
// GOMAXPROCS, releasing the host lock for the duration.
func (b Boundary) FindPathManyArena(agent, targets, cells []int, width, height int) ([][]int, []float64, error) {
	return b.many(batch.Arena{}, agent, targets, cells, width, height)
}

// FindPathManyDynamic solves every pair with dynamic scheduling, releasing
// the host lock for the duration.
func (b Boundary) FindPathManyDynamic(agent, targets, cells []int, width, height int) ([][]int, []float64, error) {
	return b.many(batch.Dynamic{}, agent, targets, cells, width, height)
}

// many decodes the flat input, runs the batch on backend and encodes the
// outcomes in task order. All decoding and validation happens while the
// host lock is still held.
func (b Boundary) many(backend batch.Backend, agent, targets, cells []int, width, height int) ([][]int, []float64, error) {
	g, err := grid.New(cells, width, height)
	if err != nil {
		return nil, nil, err
	}
	a, err := batch.ParsePos(agent)
	if err != nil {
		return nil, nil, fmt.Errorf("host: agent: %w", err)
	}
	ts, err := batch.ParseTargets(targets)
	if err != nil {
		return nil, nil, err
	}

	opts := make([]batch.ConfigOption, 0, len(b.Options)+2)
	opts = append(opts, b.Options...)
	opts = append(opts, batch.WithHostLock(b.Lock), batch.WithBackend(backend))
	rep, err := batch.Run(context.Background(), g, a, ts, opts...)
	if err != nil {
		return nil, nil, err
	}

	paths := make([][]int, len(rep.Outcomes))
	for i, o := range rep.Outcomes {
		paths[i] = Flatten(o.Path)
	}

	return paths, rep.Costs(), nil
}

// Flatten encodes a path as x0,y0,x1,y1,... A nil path gives an empty,
// non-nil slice.
func Flatten(path []grid.Pos) []int {
	flat := make([]int, 0, 2*len(path))
	for _, p := range path {
		flat = append(flat, p.X, p.Y)
	}

	return flat
}
