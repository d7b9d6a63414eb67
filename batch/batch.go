package batch

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/anyangle/grid"
	"github.com/katalvlaran/anyangle/lazytheta"
)

var tracer = otel.Tracer("github.com/katalvlaran/anyangle/batch")

// Run plans every pair over {agent} ∪ targets and solves them on the
// configured backend. See BuildTasks and RunTasks.
func Run(ctx context.Context, g *grid.Grid, agent grid.Pos, targets []grid.Pos, opts ...ConfigOption) (*Report, error) {
	tasks, err := BuildTasks(g, agent, targets)
	if err != nil {
		cfg := buildConfig(opts)
		runErrors.WithLabelValues(cfg.Backend.Name()).Inc()
		cfg.Logger.Warn("batch: rejected input", "targets", len(targets), "error", err)
		return nil, err
	}

	return RunTasks(ctx, g, tasks, opts...)
}

// RunTasks solves tasks on g and returns their outcomes in task order.
//
// Steps:
//  1. Validate g and every task endpoint (grid.ErrOutOfBounds).
//  2. Build the shared search options (logger, optional component labels).
//  3. Pre-size the outcome slice; release the host lock for parallel backends.
//  4. Run the backend, reacquire the lock, record metrics and the span.
//
// ctx carries the tracing span only; tasks are never cancelled.
func RunTasks(ctx context.Context, g *grid.Grid, tasks []Task, opts ...ConfigOption) (*Report, error) {
	cfg := buildConfig(opts)
	name := cfg.Backend.Name()

	_, span := tracer.Start(ctx, "batch.Run", trace.WithAttributes(
		attribute.String("backend", name),
		attribute.Int("tasks", len(tasks)),
		attribute.Bool("prelabel", cfg.Prelabel),
	))
	defer span.End()

	fail := func(err error) (*Report, error) {
		runErrors.WithLabelValues(name).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		cfg.Logger.Warn("batch: run failed", "backend", name, "error", err)
		return nil, err
	}

	// 1) Validate before any search work.
	if g == nil {
		return fail(ErrNilGrid)
	}
	for _, t := range tasks {
		if !g.InBounds(t.Start.X, t.Start.Y) || !g.InBounds(t.Goal.X, t.Goal.Y) {
			return fail(fmt.Errorf("batch: task %d %v→%v: %w", t.Index, t.Start, t.Goal, grid.ErrOutOfBounds))
		}
	}

	// 2) Shared, read-only search inputs.
	searchOpts := make([]lazytheta.Option, 0, len(cfg.Search)+2)
	searchOpts = append(searchOpts, lazytheta.WithLogger(cfg.Logger))
	searchOpts = append(searchOpts, cfg.Search...)
	if cfg.Prelabel {
		searchOpts = append(searchOpts, lazytheta.WithLabels(g.Components()))
	}

	// 3–4) Fan out.
	out := make([]Outcome, len(tasks))
	began := time.Now()
	if err := runBackend(cfg, g, tasks, out, searchOpts); err != nil {
		return fail(err)
	}
	elapsed := time.Since(began)

	runDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	unreachable := observe(name, out)
	span.SetAttributes(attribute.Int("unreachable", unreachable))
	cfg.Logger.Info("batch: run finished",
		"backend", name, "tasks", len(tasks),
		"unreachable", unreachable, "elapsed", elapsed)

	return &Report{Tasks: tasks, Outcomes: out, Backend: name, Elapsed: elapsed}, nil
}

// runBackend releases the host lock around parallel backends. The deferred
// Reacquire runs after every worker has joined, even if a worker panicked.
func runBackend(cfg Config, g *grid.Grid, tasks []Task, out []Outcome, opts []lazytheta.Option) error {
	if cfg.Backend.Parallel() {
		cfg.Lock.Release()
		defer cfg.Lock.Reacquire()
	}

	return cfg.Backend.Run(g, tasks, out, opts)
}

func buildConfig(opts []ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// CostMatrix returns the symmetric pairwise cost table over the point set
// covered by the report's tasks: m[i][j] is the cost between points i and j,
// 0 on the diagonal and +Inf for unreachable or missing pairs.
func (r *Report) CostMatrix() [][]float64 {
	n := 0
	for _, t := range r.Tasks {
		n = max(n, t.StartIdx+1, t.GoalIdx+1)
	}
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = math.Inf(1)
			}
		}
	}
	for k, t := range r.Tasks {
		c := r.Outcomes[k].Cost
		m[t.StartIdx][t.GoalIdx] = c
		m[t.GoalIdx][t.StartIdx] = c
	}

	return m
}
