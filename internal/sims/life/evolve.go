package life

import "lifegrid/internal/core"

// CountNeighbors returns how many of the eight cells around (x, y) are alive.
// Without wrap, positions off the grid do not exist; with wrap the grid is a
// torus.
func CountNeighbors(g core.Grid, x, y int, wrap bool) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if wrap {
				nx, ny = g.Wrap(nx, ny)
			}
			if g.Alive(nx, ny) {
				n++
			}
		}
	}
	return n
}

// NextGeneration applies rule to every cell of g at once and returns the new
// grid. g is only read, never written.
func NextGeneration(g core.Grid, rule Rule, wrap bool) core.Grid {
	if g.Empty() {
		return g.Clear()
	}
	return g.With(func(x, y int) bool {
		return rule.Next(g.Alive(x, y), CountNeighbors(g, x, y, wrap))
	})
}
