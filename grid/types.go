package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrDimensionMismatch indicates len(cells) != width*height.
	ErrDimensionMismatch = errors.New("grid: cell count does not match width*height")
	// ErrOutOfBounds indicates a position or node id outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Free is the cell value of traversable space. Wall is the canonical
// impassable value; any non-zero value blocks.
const (
	Free = 0
	Wall = 255
)

// Sqrt2 is the cost of one diagonal step.
const Sqrt2 = math.Sqrt2

// Pos is a 0-indexed cell position.
type Pos struct {
	X, Y int
}

// NodeID is the row-major index of a cell: id = y*width + x.
type NodeID int

// Neighbor is a reachable adjacent cell and the cost of stepping into it.
type Neighbor struct {
	ID   NodeID
	Cost float64
}

// offsets lists the 8 neighbor directions in the fixed order
// N, NE, E, SE, S, SW, W, NW. Search determinism relies on this order.
var offsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
