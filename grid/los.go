package grid

// LineOfSight reports whether the segment between the centres of p and q
// crosses only free cells. Both endpoints must be free and in bounds.
//
// The ray walks every cell whose interior the segment passes through
// (a supercover Bresenham walk in integer arithmetic). When the segment
// hits a cell corner exactly, it continues diagonally unless both side
// cells are walls, matching the corner policy of Adaptor.Neighbors.
// The visited cell set depends only on the segment, so
// LineOfSight(p,q) == LineOfSight(q,p).
//
// Complexity: O(|dx| + |dy|).
func (g *Grid) LineOfSight(p, q Pos) bool {
	if g.blocked(p.X, p.Y) || g.blocked(q.X, q.Y) {
		return false
	}
	dx, sx := absSign(q.X - p.X)
	dy, sy := absSign(q.Y - p.Y)

	x, y := p.X, p.Y
	for ix, iy := 0, 0; ix < dx || iy < dy; {
		// Compare the ray parameters of the next vertical and horizontal
		// boundary crossings: (0.5+ix)/dx against (0.5+iy)/dy.
		decision := (1+2*ix)*dy - (1+2*iy)*dx
		switch {
		case decision == 0:
			if g.blocked(x+sx, y) && g.blocked(x, y+sy) {
				return false
			}
			x += sx
			y += sy
			ix++
			iy++
		case decision < 0:
			x += sx
			ix++
		default:
			y += sy
			iy++
		}
		if g.blocked(x, y) {
			return false
		}
	}

	return true
}

func absSign(v int) (abs, sign int) {
	switch {
	case v > 0:
		return v, 1
	case v < 0:
		return -v, -1
	default:
		return 0, 0
	}
}
