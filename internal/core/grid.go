package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ErrNegativeSize is returned when a grid is requested with a negative dimension.
var ErrNegativeSize = errors.New("grid dimensions must not be negative")

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// Grid is an immutable rows*cols field of alive/dead cells stored in row-major
// order. Every operation returns a new Grid and leaves the receiver untouched,
// so callers may keep earlier generations around as snapshots.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid returns a grid with every cell dead.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 0 || cols < 0 {
		return Grid{}, fmt.Errorf("new grid %dx%d: %w", rows, cols, ErrNegativeSize)
	}
	return Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// RandomGrid returns a grid where each cell is alive with probability density.
// A nil rng falls back to the package-level math/rand/v2 source.
func RandomGrid(rows, cols int, density float64, rng *rand.Rand) (Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	for i := range g.cells {
		g.cells[i] = chance(rng, density)
	}
	return g, nil
}

// GridFromRows parses a picture of the grid where '#' or 'O' marks a live cell.
// Rows shorter than the widest one are padded with dead cells.
func GridFromRows(rows []string) Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := Grid{rows: len(rows), cols: cols, cells: make([]bool, len(rows)*cols)}
	for y, r := range rows {
		for x, ch := range []byte(r) {
			g.cells[y*cols+x] = ch == '#' || ch == 'O'
		}
	}
	return g
}

func chance(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	if rng == nil {
		return rand.Float64() < p
	}
	return rng.Float64() < p
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Size reports the grid dimensions as width and height.
func (g Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Empty reports whether the grid has no cells at all.
func (g Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.cols + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.cols + g.cols) % g.cols
	y = (y%g.rows + g.rows) % g.rows
	return x, y
}

// Alive reports the state of (x, y). Out-of-bounds cells are dead.
func (g Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y*g.cols+x]
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Coords lists the live cells in row-major order.
func (g Grid) Coords() []Coord {
	var out []Coord
	for i, c := range g.cells {
		if c {
			out = append(out, Coord{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}

// Bytes returns a fresh row-major 0/1 buffer suitable for renderers.
func (g Grid) Bytes() []uint8 {
	out := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		if c {
			out[i] = 1
		}
	}
	return out
}

// Equal reports whether both grids have the same dimensions and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[y*g.cols+x] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) clone() Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// With returns a grid of the same size whose cells are produced by fn. It is
// the building block for whole-grid transitions such as a generation step.
func (g Grid) With(fn func(x, y int) bool) Grid {
	out := Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			out.cells[y*g.cols+x] = fn(x, y)
		}
	}
	return out
}

// PlacePattern stamps block onto the grid with its top-left corner at
// (originX, originY). Block cells falling outside the grid are dropped.
func (g Grid) PlacePattern(block [][]bool, originX, originY int) Grid {
	out := g.clone()
	for by, row := range block {
		for bx, v := range row {
			x, y := originX+bx, originY+by
			if out.InBounds(x, y) {
				out.cells[y*out.cols+x] = v
			}
		}
	}
	return out
}

// Toggle flips a single cell. Out-of-bounds coordinates return g unchanged.
func (g Grid) Toggle(x, y int) Grid {
	if !g.InBounds(x, y) {
		return g
	}
	out := g.clone()
	i := y*g.cols + x
	out.cells[i] = !out.cells[i]
	return out
}

// SetCell sets one cell to alive. When the cell already holds that value, or
// lies outside the grid, g itself is returned.
func (g Grid) SetCell(x, y int, alive bool) Grid {
	if !g.InBounds(x, y) || g.cells[y*g.cols+x] == alive {
		return g
	}
	out := g.clone()
	out.cells[y*g.cols+x] = alive
	return out
}

// Clear returns an all-dead grid of the same size.
func (g Grid) Clear() Grid {
	return Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
}

// Shift translates the content by (dx, dy); positive dx moves it right and
// positive dy moves it down. With wrap the grid is a torus. Without wrap,
// cells whose source lies outside the grid come alive with probability
// fillDensity, which makes panning feel like moving over an endless world.
func (g Grid) Shift(dx, dy int, fillDensity float64, wrap bool, rng *rand.Rand) Grid {
	if g.Empty() {
		return g.clone()
	}
	return g.With(func(x, y int) bool {
		sx, sy := x-dx, y-dy
		if wrap {
			sx, sy = g.Wrap(sx, sy)
			return g.cells[sy*g.cols+sx]
		}
		if !g.InBounds(sx, sy) {
			return chance(rng, fillDensity)
		}
		return g.cells[sy*g.cols+sx]
	})
}
