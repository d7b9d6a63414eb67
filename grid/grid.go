package grid

import "fmt"

// Grid is an immutable obstacle map of Width×Height cells stored row-major
// with x varying fastest. Cells are shared, never copied and never written,
// so one Grid can back any number of concurrent searches.
type Grid struct {
	Width, Height int
	cells         []int
}

// New wraps cells as a Width×Height grid.
// Returns ErrEmptyGrid if width or height is not positive and
// ErrDimensionMismatch if len(cells) != width*height.
// Complexity: O(1); the slice is referenced, not copied.
func New(cells []int, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells, want %d×%d=%d",
			ErrDimensionMismatch, len(cells), width, height, width*height)
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Value returns the raw cell value at (x,y), or ErrOutOfBounds.
func (g *Grid) Value(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, outOfBounds(x, y)
	}

	return g.cells[g.index(x, y)], nil
}

// Passable reports whether (x,y) is inside the grid and free.
// Out-of-range cells are treated as walls.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)] == Free
}

// blocked is the hot-path inverse of Passable.
func (g *Grid) blocked(x, y int) bool {
	return !g.InBounds(x, y) || g.cells[g.index(x, y)] != Free
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

func outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
}
