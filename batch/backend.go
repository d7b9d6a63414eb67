package batch

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// Backend executes a task list. Implementations write the outcome of
// tasks[i] to out[i] (len(out) == len(tasks)) and never touch other slots.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string
	// Parallel reports whether Run fans out to other goroutines, which
	// makes the orchestrator release the host lock around it.
	Parallel() bool
	// Run solves every task on g with searchers built from opts.
	Run(g *grid.Grid, tasks []Task, out []Outcome, opts []lazytheta.Option) error
}

// Backend names accepted by BackendByName.
const (
	NameSequential = "sequential"
	NameArena      = "arena"
	NameDynamic    = "dynamic"
)

// BackendByName returns the backend for name with automatic sizing.
// Returns ErrUnknownBackend for any other name.
func BackendByName(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSequential:
		return Sequential{}, nil
	case NameArena:
		return Arena{}, nil
	case NameDynamic:
		return Dynamic{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// solve runs one task on s.
func solve(s *lazytheta.Searcher, t Task) (Outcome, error) {
	res, err := s.SearchPos(t.Start, t.Goal)
	if err != nil {
		return Outcome{}, fmt.Errorf("batch: task %d: %w", t.Index, err)
	}

	return Outcome{Path: res.Path, Cost: res.Cost, Stats: res.Stats}, nil
}

// solveFresh runs one task on a private Adaptor and Searcher.
func solveFresh(g *grid.Grid, t Task, opts []lazytheta.Option) (Outcome, error) {
	return solve(lazytheta.New(grid.NewAdaptor(g), opts...), t)
}

// autoSize returns n, or GOMAXPROCS when n <= 0.
func autoSize(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

//----------------------------------------------------------------------------//
// Sequential
//----------------------------------------------------------------------------//

// Sequential solves tasks in order with one reused Searcher.
type Sequential struct{}

// Name returns "sequential".
func (Sequential) Name() string { return NameSequential }

// Parallel returns false.
func (Sequential) Parallel() bool { return false }

// Run solves tasks in order, calling GenerateNodes between them.
func (Sequential) Run(g *grid.Grid, tasks []Task, out []Outcome, opts []lazytheta.Option) error {
	s := lazytheta.New(grid.NewAdaptor(g), opts...)
	for i, t := range tasks {
		if i > 0 {
			s.GenerateNodes()
		}
		o, err := solve(s, t)
		if err != nil {
			return err
		}
		out[i] = o
	}

	return nil
}

//----------------------------------------------------------------------------//
// Arena
//----------------------------------------------------------------------------//

// Arena runs one goroutine per task with at most Size in flight.
// Size <= 0 means runtime.GOMAXPROCS(0).
type Arena struct {
	Size int
}

// Name returns "arena".
func (Arena) Name() string { return NameArena }

// Parallel returns true.
func (Arena) Parallel() bool { return true }

// Run dispatches tasks in order; the semaphore blocks dispatch while the
// arena is full. Tasks are never cancelled, so acquisition uses a
// background context.
func (a Arena) Run(g *grid.Grid, tasks []Task, out []Outcome, opts []lazytheta.Option) error {
	sem := semaphore.NewWeighted(int64(autoSize(a.Size)))
	var eg errgroup.Group
	for i := range tasks {
		if err := sem.Acquire(context.Background(), 1); err != nil {
			_ = eg.Wait()
			return fmt.Errorf("batch: arena: %w", err)
		}
		eg.Go(func() error {
			defer sem.Release(1)
			o, err := solveFresh(g, tasks[i], opts)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}

	return eg.Wait()
}

//----------------------------------------------------------------------------//
// Dynamic
//----------------------------------------------------------------------------//

// Dynamic runs Workers goroutines that repeatedly claim the next Chunk task
// indices from a shared counter until none remain.
// Workers <= 0 means runtime.GOMAXPROCS(0); Chunk <= 0 means 1.
type Dynamic struct {
	Workers int
	Chunk   int
}

// Name returns "dynamic".
func (Dynamic) Name() string { return NameDynamic }

// Parallel returns true.
func (Dynamic) Parallel() bool { return true }

// Run solves tasks with dynamic scheduling. Each task still gets a private
// Adaptor and Searcher; a worker only owns its claimed index range.
func (d Dynamic) Run(g *grid.Grid, tasks []Task, out []Outcome, opts []lazytheta.Option) error {
	n := len(tasks)
	chunk := d.Chunk
	if chunk <= 0 {
		chunk = 1
	}
	workers := min(autoSize(d.Workers), (n+chunk-1)/chunk)

	var next atomic.Int64
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for {
				hi := int(next.Add(int64(chunk)))
				lo := hi - chunk
				if lo >= n {
					return nil
				}
				for i := lo; i < min(hi, n); i++ {
					o, err := solveFresh(g, tasks[i], opts)
					if err != nil {
						return err
					}
					out[i] = o
				}
			}
		})
	}

	return eg.Wait()
}
