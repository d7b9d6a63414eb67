// Package testmaps builds the reference obstacle maps shared by tests,
// examples and benchmarks.
package testmaps

import (
	"strings"

	"github.com/katalvlaran/anyangle/grid"
)

// DemoWidth and DemoHeight are the dimensions of Demo.
const (
	DemoWidth  = 70
	DemoHeight = 20
)

// Demo returns the 70×20 reference map: a one-cell border wall plus
// interior partitions that force the path from (1,1) to (68,18) through
// three gaps. Cells are row-major, x fastest.
func Demo() []int {
	w, h := DemoWidth, DemoHeight
	cells := make([]int, w*h)
	wall := func(x0, y0, sx, sy int) {
		for x := x0; x < x0+sx; x++ {
			for y := y0; y < y0+sy; y++ {
				cells[y*w+x] = grid.Wall
			}
		}
	}

	// borders
	wall(0, 0, w, 1)
	wall(0, 0, 1, h)
	wall(0, h-1, w, 1)
	wall(w-1, 0, 1, h)

	// partitions
	wall(5, 0, 1, h-6)
	wall(w-6, 5, 1, h-6)
	wall(w-6, 5, 4, 1)
	wall(w-4, 8, 4, 1)
	wall(20, 0, 1, h-4)
	wall(w-20, 5, 14, 1)

	cells[1*w+1] = grid.Free
	cells[(h-2)*w+(w-2)] = grid.Free

	return cells
}

// DemoGrid wraps Demo in a *grid.Grid.
func DemoGrid() *grid.Grid {
	g, err := grid.New(Demo(), DemoWidth, DemoHeight)
	if err != nil {
		panic(err)
	}

	return g
}

// Empty returns an all-free w×h grid.
func Empty(w, h int) *grid.Grid {
	g, err := grid.New(make([]int, w*h), w, h)
	if err != nil {
		panic(err)
	}

	return g
}

// Parse builds a grid from rows of '.' (free) and '#' (wall).
// Panics on ragged input.
func Parse(rows ...string) *grid.Grid {
	h, w := len(rows), len(rows[0])
	cells := make([]int, 0, w*h)
	for _, r := range rows {
		if len(r) != w {
			panic("testmaps: ragged map")
		}
		for _, c := range r {
			if c == '#' {
				cells = append(cells, grid.Wall)
			} else {
				cells = append(cells, grid.Free)
			}
		}
	}
	g, err := grid.New(cells, w, h)
	if err != nil {
		panic(err)
	}

	return g
}

// Render draws g with '#' walls, '.' free cells and the path waypoints
// marked 'S', 'E' and '*'. Useful in failure messages.
func Render(g *grid.Grid, path []grid.Pos) string {
	marks := make(map[grid.Pos]byte, len(path))
	for i, p := range path {
		switch i {
		case 0:
			marks[p] = 'S'
		case len(path) - 1:
			marks[p] = 'E'
		default:
			marks[p] = '*'
		}
	}
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if m, ok := marks[grid.Pos{X: x, Y: y}]; ok {
				sb.WriteByte(m)
			} else if g.Passable(x, y) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
