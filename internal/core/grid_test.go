package core

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestNewGridAllDead(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("expected 3x4 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if g.Population() != 0 {
		t.Fatalf("expected empty grid, got population %d", g.Population())
	}
}

func TestNewGridRejectsNegative(t *testing.T) {
	if _, err := NewGrid(-1, 3); !errors.Is(err, ErrNegativeSize) {
		t.Fatalf("expected ErrNegativeSize, got %v", err)
	}
	g, err := NewGrid(0, 0)
	if err != nil {
		t.Fatalf("zero-sized grid should be valid: %v", err)
	}
	if !g.Empty() {
		t.Fatal("zero-sized grid should report Empty")
	}
	if got := g.Toggle(0, 0); !got.Equal(g) {
		t.Fatal("toggle on empty grid should be a no-op")
	}
	if got := g.Shift(1, 1, 1, false, nil); got.Population() != 0 {
		t.Fatal("shift on empty grid should stay empty")
	}
}

func TestRandomGridDensityExtremes(t *testing.T) {
	rng := NewRNG(7).Source()
	full, err := RandomGrid(5, 6, 1, rng)
	if err != nil {
		t.Fatalf("RandomGrid: %v", err)
	}
	if full.Population() != 30 {
		t.Fatalf("density 1 should fill the grid, got %d", full.Population())
	}
	none, _ := RandomGrid(5, 6, 0, rng)
	if none.Population() != 0 {
		t.Fatalf("density 0 should leave the grid empty, got %d", none.Population())
	}
}

func TestRandomGridDeterministicForSeed(t *testing.T) {
	a, _ := RandomGrid(20, 20, 0.3, NewRNG(99).Source())
	b, _ := RandomGrid(20, 20, 0.3, NewRNG(99).Source())
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same grid")
	}
	c, _ := RandomGrid(20, 20, 0.3, rand.New(rand.NewPCG(100, 0)))
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestPlacePatternClipsAtEdges(t *testing.T) {
	g, _ := NewGrid(5, 5)
	block := [][]bool{{true, true}, {true, true}}

	placed := g.PlacePattern(block, 1, 1)
	for _, c := range []Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		if !placed.Alive(c.X, c.Y) {
			t.Fatalf("expected (%d,%d) alive", c.X, c.Y)
		}
	}
	if placed.Alive(0, 0) {
		t.Fatal("cell outside the block should stay dead")
	}
	if g.Population() != 0 {
		t.Fatal("PlacePattern must not modify the receiver")
	}

	clipped := g.PlacePattern(block, 4, 4)
	if clipped.Population() != 1 || !clipped.Alive(4, 4) {
		t.Fatalf("expected only the corner cell to land, got\n%s", clipped)
	}
}

func TestToggleAndSetCell(t *testing.T) {
	g, _ := NewGrid(3, 3)
	on := g.Toggle(1, 1)
	if !on.Alive(1, 1) {
		t.Fatal("toggle should turn the cell on")
	}
	if g.Alive(1, 1) {
		t.Fatal("toggle must not modify the receiver")
	}
	if off := on.Toggle(1, 1); off.Alive(1, 1) {
		t.Fatal("second toggle should turn the cell off")
	}
	if oob := on.Toggle(5, -1); !oob.Equal(on) {
		t.Fatal("out-of-bounds toggle should be a no-op")
	}

	same := on.SetCell(1, 1, true)
	if &same.cells[0] != &on.cells[0] {
		t.Fatal("SetCell with an unchanged value should return the same grid")
	}
	set := on.SetCell(0, 2, true)
	if !set.Alive(0, 2) || on.Alive(0, 2) {
		t.Fatal("SetCell should return a new grid with the cell set")
	}
}

func TestClear(t *testing.T) {
	g, _ := RandomGrid(3, 3, 1, nil)
	cleared := g.Clear()
	if cleared.Population() != 0 || cleared.Rows() != 3 || cleared.Cols() != 3 {
		t.Fatalf("unexpected cleared grid\n%s", cleared)
	}
	if g.Population() != 9 {
		t.Fatal("Clear must not modify the receiver")
	}
}

func TestShiftMovesContent(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g = g.SetCell(1, 1, true)

	shifted := g.Shift(1, 0, 0, false, nil)
	if !shifted.Alive(2, 1) || shifted.Alive(1, 1) {
		t.Fatalf("expected centre to move right\n%s", shifted)
	}

	down := g.Shift(0, 1, 0, false, nil)
	if !down.Alive(1, 2) {
		t.Fatalf("positive dy should move content down\n%s", down)
	}
}

func TestShiftFillDensity(t *testing.T) {
	g, _ := NewGrid(3, 3)

	filled := g.Shift(1, 0, 1, false, nil)
	for y := 0; y < 3; y++ {
		if !filled.Alive(0, y) {
			t.Fatalf("new column should be alive at density 1, row %d", y)
		}
		if filled.Alive(1, y) {
			t.Fatalf("shifted content should stay dead, row %d", y)
		}
	}

	empty := g.Shift(1, 0, 0, false, nil)
	if empty.Population() != 0 {
		t.Fatal("density 0 should leave new cells dead")
	}

	wrapped := g.Shift(1, 0, 1, true, nil)
	if wrapped.Population() != 0 {
		t.Fatal("wrap mode must ignore fill density")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	g := GridFromRows([]string{
		"#..#..",
		".##...",
		"...#.#",
		"#....#",
		"..##..",
	})

	wrapped := g.Shift(4, -3, 0, true, nil).Shift(-4, 3, 0, true, nil)
	if !wrapped.Equal(g) {
		t.Fatalf("wrap round trip should be exact\nwant\n%sgot\n%s", g, wrapped)
	}

	dx, dy := 1, 2
	back := g.Shift(dx, dy, 0, false, nil).Shift(-dx, -dy, 0, false, nil)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if !g.InBounds(x+dx, y+dy) {
				continue
			}
			if back.Alive(x, y) != g.Alive(x, y) {
				t.Fatalf("cell (%d,%d) changed across round trip", x, y)
			}
		}
	}
}

func TestWrapCoordinates(t *testing.T) {
	g, _ := NewGrid(4, 5)
	x, y := g.Wrap(-1, 4)
	if x != 4 || y != 0 {
		t.Fatalf("expected (4,0), got (%d,%d)", x, y)
	}
}

func TestGridFromRowsAndCoords(t *testing.T) {
	g := GridFromRows([]string{".#", "#"})
	if g.Cols() != 2 || g.Rows() != 2 {
		t.Fatalf("expected padded 2x2 grid, got %dx%d", g.Cols(), g.Rows())
	}
	want := []Coord{{X: 1, Y: 0}, {X: 0, Y: 1}}
	if got := g.Coords(); !slices.Equal(got, want) {
		t.Fatalf("Coords = %v, want %v", got, want)
	}
	if got := g.Bytes(); !slices.Equal(got, []uint8{0, 1, 1, 0}) {
		t.Fatalf("Bytes = %v", got)
	}
	if g.String() != ".#\n#.\n" {
		t.Fatalf("unexpected String output %q", g.String())
	}
}
