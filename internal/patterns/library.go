package patterns

import "strings"

// Seed is a named block that can be stamped onto a grid.
type Seed struct {
	Name  string
	Block [][]bool
}

// Size returns the block's width and height.
func (s Seed) Size() (w, h int) {
	for _, row := range s.Block {
		w = max(w, len(row))
	}
	return w, len(s.Block)
}

// Library returns the seeds offered by the pattern picker.
func Library() []Seed {
	return []Seed{
		{Name: "Glider", Block: blockFromRows(
			".#.",
			"..#",
			"###",
		)},
		{Name: "Lightweight Spaceship", Block: blockFromRows(
			".####",
			"#...#",
			"....#",
			"#..#.",
		)},
		{Name: "Pulsar (Period 3)", Block: blockFromRows(
			"..###...###..",
			".............",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			"..###...###..",
			".............",
			"..###...###..",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			".............",
			"..###...###..",
		)},
		{Name: "Gosper Glider Gun", Block: blockFromRows(
			"........................#...........",
			"......................#.#...........",
			"............##......##............##",
			"...........#...#....##............##",
			"##........#.....#...##..............",
			"##........#...#.##....#.#...........",
			"..........#.....#.......#...........",
			"...........#...#....................",
			"............##......................",
		)},
	}
}

// SeedByName finds a library seed by case-insensitive name.
func SeedByName(name string) (Seed, bool) {
	for _, s := range Library() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Seed{}, false
}

// Center returns the origin that places a w*h block in the middle of a
// rows*cols grid. Blocks larger than the grid get a negative origin and are
// clipped evenly on both sides.
func Center(rows, cols, w, h int) (x, y int) {
	return floorDiv(cols-w, 2), floorDiv(rows-h, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func blockFromRows(rows ...string) [][]bool {
	block := make([][]bool, len(rows))
	for y, r := range rows {
		block[y] = make([]bool, len(r))
		for x, ch := range r {
			block[y][x] = ch == '#'
		}
	}
	return block
}
