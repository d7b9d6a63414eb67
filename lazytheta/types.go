package lazytheta

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/anyangle/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrDirtyState indicates Search was called again without GenerateNodes.
	ErrDirtyState = errors.New("lazytheta: searcher must be reset with GenerateNodes before reuse")

	// ErrBadWeight indicates a negative, NaN or infinite heuristic weight.
	ErrBadWeight = errors.New("lazytheta: heuristic weight must be finite and non-negative")

	// ErrNilAdaptor indicates New was called without an adaptor.
	ErrNilAdaptor = errors.New("lazytheta: adaptor is nil")
)

// DefaultWeight is the heuristic weight used unless WithWeight overrides it.
const DefaultWeight = 100.0

// TieBreak selects how entries with equal f are ordered.
type TieBreak int

const (
	// TieLowerH prefers the entry closer to the goal, then the lower NodeID.
	TieLowerH TieBreak = iota
	// TieLowerID prefers the lower NodeID.
	TieLowerID
)

// Options configures a Searcher.
//
// Weight   – multiplier on the heuristic term of f. 1 = unweighted.
// TieBreak – ordering of equal-f entries.
// Labels   – optional component labels of the grid; when set, queries whose
//
//	endpoints lie in different components return unreachable at once.
//
// Logger   – receives one Debug record per finished search.
type Options struct {
	Weight   float64
	TieBreak TieBreak
	Labels   *grid.Labels
	Logger   *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithWeight sets the heuristic weight. Panics on negative, NaN or infinite values.
func WithWeight(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic(ErrBadWeight.Error())
	}

	return func(o *Options) { o.Weight = w }
}

// WithTieBreak sets the equal-f ordering.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) { o.TieBreak = tb }
}

// WithLabels enables the component pre-check. lb must come from the same
// grid the searcher runs on; it is read-only and may be shared.
func WithLabels(lb *grid.Labels) Option {
	return func(o *Options) { o.Labels = lb }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Weight=DefaultWeight, TieBreak=TieLowerH, no
// labels and slog.Default().
func DefaultOptions() Options {
	return Options{
		Weight:   DefaultWeight,
		TieBreak: TieLowerH,
		Logger:   slog.Default(),
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded  int // nodes closed
	Reopened  int // nodes pushed back after a failed visibility check
	LOSChecks int // raycasts performed
}

// Result is the outcome of one search.
// Path runs from start to goal inclusive; it is nil and Cost is +Inf
// when the goal is unreachable.
type Result struct {
	Path  []grid.Pos
	Cost  float64
	Found bool
	Stats Stats
}

// Unreachable returns the sentinel no-path result.
func Unreachable() Result {
	return Result{Cost: math.Inf(1)}
}
