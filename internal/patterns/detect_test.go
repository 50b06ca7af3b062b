package patterns

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func emptyGrid(t *testing.T, rows, cols int) core.Grid {
	t.Helper()
	g, err := core.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestDetectBlock(t *testing.T) {
	g := emptyGrid(t, 10, 10).PlacePattern([][]bool{{true, true}, {true, true}}, 1, 1)
	found := Detect(g, DefaultCatalog())

	if found.Len() != 1 {
		t.Fatalf("expected one pattern, got %d", found.Len())
	}
	want := []core.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	for _, c := range want {
		p, ok := found.At(c.X, c.Y)
		if !ok {
			t.Fatalf("expected pattern at (%d,%d)", c.X, c.Y)
		}
		if p.Name != "Block" || p.Category != StillLife || string(p.Category) != "Still Life" {
			t.Fatalf("unexpected pattern %+v", p)
		}
	}
	cells := slices.Clone(found.Patterns()[0].Cells)
	slices.SortFunc(cells, func(a, b core.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	if !slices.Equal(cells, want) {
		t.Fatalf("block cells = %v, want %v", cells, want)
	}
	if found.Covered() != 4 {
		t.Fatalf("expected 4 covered cells, got %d", found.Covered())
	}
	if _, ok := found.At(0, 0); ok {
		t.Fatal("dead cell should not be annotated")
	}
}

func TestDetectBlinker(t *testing.T) {
	g := emptyGrid(t, 10, 10).PlacePattern([][]bool{{true, true, true}}, 2, 2)
	p, ok := Detect(g, DefaultCatalog()).At(2, 2)
	if !ok || p.Name != "Blinker" || p.Category != Oscillator {
		t.Fatalf("expected Blinker, got %+v", p)
	}
}

func TestDetectGliderInEveryOrientation(t *testing.T) {
	glider := Offsets([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	mirrored := make([]core.Coord, len(glider))
	for i, c := range glider {
		mirrored[i] = core.Coord{X: -c.X, Y: c.Y}
	}
	catalog := DefaultCatalog()

	for _, start := range [][]core.Coord{glider, mirrored} {
		cur := start
		for turn := 0; turn < 4; turn++ {
			for _, origin := range []core.Coord{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 9, Y: 9}} {
				g := emptyGrid(t, 12, 12)
				for _, c := range Normalize(cur) {
					g = g.SetCell(origin.X+c.X, origin.Y+c.Y, true)
				}
				found := Detect(g, catalog)
				for _, c := range g.Coords() {
					p, ok := found.At(c.X, c.Y)
					if !ok || p.Name != "Glider" {
						t.Fatalf("turn %d origin %v: cell %v not recognised as Glider\n%s", turn, origin, c, g)
					}
				}
			}
			cur = rotate(cur)
		}
	}
}

func TestDetectIgnoresUnknownShapes(t *testing.T) {
	g := core.GridFromRows([]string{
		"..........",
		".####.....",
		".#........",
		".....#....",
		"..........",
		".......##.",
		".......##.",
	})
	found := Detect(g, DefaultCatalog())
	if found.Len() != 1 {
		t.Fatalf("expected only the block to be recognised, got %v", found.Census())
	}
	for _, c := range []core.Coord{{X: 1, Y: 1}, {X: 4, Y: 1}, {X: 1, Y: 2}, {X: 5, Y: 3}} {
		if _, ok := found.At(c.X, c.Y); ok {
			t.Fatalf("cell %v of an unknown shape should not be annotated", c)
		}
	}
	if p, ok := found.At(8, 6); !ok || p.Name != "Block" {
		t.Fatal("block should still be recognised next to unknown shapes")
	}
}

func TestDetectTouchingBlocksAreUnknown(t *testing.T) {
	// Diagonally touching blocks are one 8-connected component that matches
	// neither Block nor the catalog's Beacon phase.
	g := core.GridFromRows([]string{
		"##..",
		"##..",
		"..##",
		"..##",
	})
	found := Detect(g, DefaultCatalog())
	if found.Len() != 0 {
		t.Fatalf("expected no detections, got %v", found.Census())
	}
	for _, c := range g.Coords() {
		if _, ok := found.At(c.X, c.Y); ok {
			t.Fatalf("cell %v should not be annotated", c)
		}
	}
}

func TestDetectOnlyCatalogPhase(t *testing.T) {
	// The glider's other phase is not in the catalog.
	g := core.GridFromRows([]string{
		".....",
		".#.#.",
		"..##.",
		"..#..",
		".....",
	})
	if found := Detect(g, DefaultCatalog()); found.Len() != 0 {
		t.Fatalf("expected no detections, got %v", found.Census())
	}
}

func TestDetectCensus(t *testing.T) {
	g := core.GridFromRows([]string{
		"##.....###",
		"##........",
		"..........",
		"......##..",
		"......##..",
		"..........",
		".###......",
	})
	census := Detect(g, DefaultCatalog()).Census()
	if census["Block"] != 2 || census["Blinker"] != 2 {
		t.Fatalf("unexpected census %v", census)
	}
}

func TestDetectEmptyInputs(t *testing.T) {
	if Detect(emptyGrid(t, 0, 0), DefaultCatalog()).Len() != 0 {
		t.Fatal("empty grid should yield no detections")
	}
	g := emptyGrid(t, 3, 3).Toggle(1, 1)
	found := Detect(g, nil)
	if found.Len() != 0 {
		t.Fatal("nil catalog should yield no detections")
	}
	if _, ok := found.At(1, 1); ok {
		t.Fatal("nil catalog should not annotate cells")
	}
}
