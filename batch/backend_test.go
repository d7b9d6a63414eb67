package batch_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/anyangle/batch"
	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/internal/testmaps"
	"github.com/katalvlaran/anyangle/lazytheta"
)

// BackendSuite checks that every backend reproduces the sequential results.
type BackendSuite struct {
	suite.Suite
	g        *grid.Grid
	baseline *batch.Report
}

// parallelBackends lists the configurations compared against Sequential.
func parallelBackends() []batch.Backend {
	return []batch.Backend{
		batch.Arena{Size: 1},
		batch.Arena{Size: 4},
		batch.Arena{},
		batch.Dynamic{},
		batch.Dynamic{Workers: 3, Chunk: 2},
		batch.Dynamic{Workers: 64, Chunk: 100},
	}
}

func (s *BackendSuite) SetupSuite() {
	s.g = testmaps.DemoGrid()
	rep, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets)
	require.NoError(s.T(), err)
	s.baseline = rep
}

// TestSequentialBaseline validates every baseline outcome.
func (s *BackendSuite) TestSequentialBaseline() {
	require.Equal(s.T(), batch.NameSequential, s.baseline.Backend)
	require.Len(s.T(), s.baseline.Outcomes, 15)
	for k, task := range s.baseline.Tasks {
		requireValidOutcome(s.T(), s.g, task, s.baseline.Outcomes[k])
	}
}

// TestParallelMatchesSequential compares every parallel backend slot by slot.
func (s *BackendSuite) TestParallelMatchesSequential() {
	for _, b := range parallelBackends() {
		rep, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets, batch.WithBackend(b))
		require.NoError(s.T(), err, "%s %+v", b.Name(), b)
		require.Equal(s.T(), b.Name(), rep.Backend)
		require.Equal(s.T(), s.baseline.Tasks, rep.Tasks)
		require.Equal(s.T(), s.baseline.Outcomes, rep.Outcomes, "%s %+v", b.Name(), b)
	}
}

// TestTieBreakConsistentAcrossBackends repeats the comparison with the
// id-only tie-break and the admissible weight.
func (s *BackendSuite) TestTieBreakConsistentAcrossBackends() {
	search := batch.WithSearchOptions(lazytheta.WithTieBreak(lazytheta.TieLowerID), lazytheta.WithWeight(1))
	seq, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets, search)
	require.NoError(s.T(), err)
	for _, b := range parallelBackends() {
		rep, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets, search, batch.WithBackend(b))
		require.NoError(s.T(), err)
		require.Equal(s.T(), seq.Outcomes, rep.Outcomes, "%s %+v", b.Name(), b)
	}
}

// TestHostLockReleasedOnlyForParallel checks one release/reacquire pair per
// parallel run and none for sequential runs.
func (s *BackendSuite) TestHostLockReleasedOnlyForParallel() {
	lock := &recordingLock{}
	_, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets, batch.WithHostLock(lock))
	require.NoError(s.T(), err)
	require.Empty(s.T(), lock.Events())

	for _, b := range []batch.Backend{batch.Arena{Size: 2}, batch.Dynamic{Workers: 2}} {
		lock := &recordingLock{}
		_, err := batch.Run(context.Background(), s.g, demoAgent, demoTargets,
			batch.WithBackend(b), batch.WithHostLock(lock))
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"release", "reacquire"}, lock.Events(), b.Name())
	}
}

// TestUnreachableIsolation walls in one target and checks that only its
// pairs are unreachable, on every backend.
func (s *BackendSuite) TestUnreachableIsolation() {
	g := testmaps.Parse(
		"............",
		"........###.",
		"........#.#.",
		"........###.",
		"............",
	)
	agent := grid.Pos{X: 0, Y: 0}
	targets := []grid.Pos{{X: 5, Y: 4}, {X: 9, Y: 2}, {X: 11, Y: 0}}

	backends := append([]batch.Backend{batch.Sequential{}}, parallelBackends()...)
	for _, b := range backends {
		for _, pre := range []bool{false, true} {
			opts := []batch.ConfigOption{batch.WithBackend(b)}
			if pre {
				opts = append(opts, batch.WithPrelabel())
			}
			rep, err := batch.Run(context.Background(), g, agent, targets, opts...)
			require.NoError(s.T(), err)
			for k, task := range rep.Tasks {
				o := rep.Outcomes[k]
				if task.StartIdx == 2 || task.GoalIdx == 2 {
					require.Nil(s.T(), o.Path, "task %d", k)
					require.True(s.T(), math.IsInf(o.Cost, 1), "task %d", k)
					continue
				}
				requireValidOutcome(s.T(), g, task, o)
			}
		}
	}
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(BackendSuite))
}
