package batch_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anyangle/batch"
	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// demoAgent and demoTargets are free cells spread over the reference map.
var (
	demoAgent   = grid.Pos{X: 1, Y: 1}
	demoTargets = []grid.Pos{{X: 68, Y: 18}, {X: 10, Y: 10}, {X: 30, Y: 3}, {X: 60, Y: 15}, {X: 3, Y: 17}}
)

// recordingLock logs Release/Reacquire calls.
type recordingLock struct {
	mu     sync.Mutex
	events []string
}

func (l *recordingLock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "release")
}

func (l *recordingLock) Reacquire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, "reacquire")
}

func (l *recordingLock) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// countingBackend records how often Run was called and delegates to Sequential.
type countingBackend struct {
	calls int
}

func (c *countingBackend) Name() string   { return "counting" }
func (c *countingBackend) Parallel() bool { return false }
func (c *countingBackend) Run(g *grid.Grid, tasks []batch.Task, out []batch.Outcome, opts []lazytheta.Option) error {
	c.calls++
	return batch.Sequential{}.Run(g, tasks, out, opts)
}

// requireValidOutcome checks endpoints, wall-free segments and cost of a found outcome.
func requireValidOutcome(t *testing.T, g *grid.Grid, task batch.Task, o batch.Outcome) {
	t.Helper()
	require.True(t, o.Found(), "task %d %v→%v unreachable", task.Index, task.Start, task.Goal)
	require.Equal(t, task.Start, o.Path[0])
	require.Equal(t, task.Goal, o.Path[len(o.Path)-1])
	total := 0.0
	for i := 1; i < len(o.Path); i++ {
		require.True(t, g.LineOfSight(o.Path[i-1], o.Path[i]), "task %d segment %d", task.Index, i)
		total += grid.Distance(o.Path[i-1], o.Path[i])
	}
	require.InDelta(t, total, o.Cost, 1e-9)
}
