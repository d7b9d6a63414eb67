package tour

import "errors"

// Sentinel errors.
var (
	// ErrTooSmall indicates an empty cost table.
	ErrTooSmall = errors.New("tour: cost table must contain the agent")

	// ErrNonSquare indicates a ragged or non-square cost table.
	ErrNonSquare = errors.New("tour: cost table must be square")

	// ErrNegativeCost indicates a negative or NaN cost.
	ErrNegativeCost = errors.New("tour: costs must be non-negative numbers")

	// ErrDisconnected indicates two reachable targets without a finite cost,
	// which a grid cost table never produces.
	ErrDisconnected = errors.New("tour: reachable targets are not mutually reachable")
)

// Options configures Plan.
type Options struct {
	// Eps is the minimum improvement for a 2-opt move to be accepted.
	Eps float64
	// MaxIters caps accepted 2-opt moves; 0 means until a local optimum and
	// a negative value keeps the nearest-neighbour seed.
	MaxIters int
}

// DefaultOptions returns Eps = 1e-9 and no iteration cap.
func DefaultOptions() Options {
	return Options{Eps: 1e-9}
}

// Route is an open visiting order.
type Route struct {
	// Order starts with 0 (the agent) followed by target indices.
	Order []int
	// Cost is the sum of table entries along Order.
	Cost float64
	// Unreachable lists targets with no finite cost from the agent, ascending.
	Unreachable []int
}
