// Package batch plans and runs many independent Lazy Theta* queries over one
// shared, immutable grid.
//
// What:
//
//   - BuildTasks turns one agent position and n target positions into the
//     C(n+1, 2) unordered start/goal pairs over {agent} ∪ targets, in the
//     lexicographic order of combin.Combinations (pair 0 = agent → target 1).
//   - RunTasks executes a task list on a Backend and returns one Outcome per
//     task, index-aligned with the task list.
//   - Run = BuildTasks + RunTasks.
//
// Backends:
//
//   - Sequential: one Adaptor and Searcher, reset with GenerateNodes between
//     tasks. Lowest memory use.
//   - Arena: a fixed-size pool. A weighted semaphore caps in-flight tasks at
//     Size and an errgroup joins them.
//   - Dynamic: Workers goroutines claim Chunk-sized runs of task indices from a
//     shared counter, so workers that draw cheap pairs simply claim more.
//
// Every parallel task builds its own grid.Adaptor and lazytheta.Searcher;
// only the *grid.Grid (and optional component labels) is shared. Each task
// writes its own pre-allocated result slot, so there are no locks on the hot
// path and completion order does not matter. All backends return identical
// results for identical input because the search itself is deterministic.
//
// Host lock:
//
//	When the caller runs inside a host runtime with a global execution lock,
//	Config.Lock is released once before a parallel backend fans out and
//	reacquired once after all workers joined, before RunTasks returns.
//	Sequential runs keep the lock.
//
// Errors:
//
//   - ErrNoTargets, ErrOddTargets, ErrBadPosition: malformed input, reported
//     before any search runs.
//   - grid.ErrOutOfBounds: a position outside the grid, also reported upfront.
//   - Unreachable pairs are not errors: their Outcome has a nil Path and +Inf Cost.
//
// Observability:
//
//	Prometheus counters/histograms (see metrics.go), an OpenTelemetry span per
//	run, and slog records through Config.Logger.
package batch
