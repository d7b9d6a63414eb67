package grid

import "math"

// Adaptor is the search-facing view of a Grid: id/position conversion,
// neighbor enumeration, line of sight and heuristic.
//
// An Adaptor reuses an internal neighbor buffer between calls and therefore
// belongs to exactly one search at a time. Build one per goroutine with
// NewAdaptor; the underlying *Grid is shared.
type Adaptor struct {
	g   *Grid
	buf []Neighbor
}

// NewAdaptor returns an Adaptor over g.
func NewAdaptor(g *Grid) *Adaptor {
	return &Adaptor{g: g, buf: make([]Neighbor, 0, len(offsets))}
}

// Grid returns the shared grid.
func (a *Adaptor) Grid() *Grid { return a.g }

// Size returns the number of node ids, width×height.
func (a *Adaptor) Size() int { return a.g.Len() }

// PosToID converts p to its NodeID.
// Returns ErrOutOfBounds if p lies outside the grid.
func (a *Adaptor) PosToID(p Pos) (NodeID, error) {
	if !a.g.InBounds(p.X, p.Y) {
		return 0, outOfBounds(p.X, p.Y)
	}

	return NodeID(a.g.index(p.X, p.Y)), nil
}

// IDToPos converts id back to its position.
// Returns ErrOutOfBounds if id is not in [0, width×height).
func (a *Adaptor) IDToPos(id NodeID) (Pos, error) {
	if !a.Valid(id) {
		return Pos{}, outOfBounds(int(id)%a.g.Width, int(id)/a.g.Width)
	}

	return a.pos(id), nil
}

// Valid reports whether id addresses a cell of the grid.
func (a *Adaptor) Valid(id NodeID) bool {
	return id >= 0 && int(id) < a.g.Len()
}

// Passable reports whether id is a valid, free cell.
func (a *Adaptor) Passable(id NodeID) bool {
	return a.Valid(id) && a.g.cells[id] == Free
}

// Neighbors returns the free 8-connected neighbors of id with their step
// costs (1 orthogonal, √2 diagonal) in N, NE, E, SE, S, SW, W, NW order.
// A diagonal neighbor is dropped when both orthogonal cells it squeezes
// between are walls.
//
// The returned slice aliases an internal buffer and is only valid until the
// next call to Neighbors. id must be valid.
func (a *Adaptor) Neighbors(id NodeID) []Neighbor {
	a.buf = a.buf[:0]
	p := a.pos(id)
	for _, d := range offsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if a.g.blocked(nx, ny) {
			continue
		}
		cost := 1.0
		if d[0] != 0 && d[1] != 0 {
			if a.g.blocked(p.X+d[0], p.Y) && a.g.blocked(p.X, p.Y+d[1]) {
				continue // corner cut
			}
			cost = Sqrt2
		}
		a.buf = append(a.buf, Neighbor{ID: NodeID(a.g.index(nx, ny)), Cost: cost})
	}

	return a.buf
}

// LineOfSight reports whether the straight segment between the centres of
// from and to crosses only free cells. It is symmetric in its arguments.
// Invalid ids have no line of sight.
func (a *Adaptor) LineOfSight(from, to NodeID) bool {
	if !a.Valid(from) || !a.Valid(to) {
		return false
	}
	p, q := a.pos(from), a.pos(to)

	return a.g.LineOfSight(p, q)
}

// Heuristic returns the Euclidean distance between the centres of from and to.
// Both ids must be valid.
func (a *Adaptor) Heuristic(from, to NodeID) float64 {
	return Distance(a.pos(from), a.pos(to))
}

// pos is the unchecked inverse of index.
func (a *Adaptor) pos(id NodeID) Pos {
	return Pos{X: int(id) % a.g.Width, Y: int(id) / a.g.Width}
}

// Distance returns the Euclidean distance between two cell centres.
func Distance(p, q Pos) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}
