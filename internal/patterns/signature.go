// Package patterns recognises well-known Life shapes (still lifes,
// oscillators, spaceships) in a grid, independent of position, rotation and
// reflection.
package patterns

import (
	"slices"
	"strconv"
	"strings"

	"lifegrid/internal/core"
)

// Signature is a comparable encoding of a normalized set of cells. Two cell
// sets share a Signature iff one is a translation of the other.
type Signature string

// Normalize translates cells so the minimum x and y are zero and orders them
// by row, then column. The input slice is not modified.
func Normalize(cells []core.Coord) []core.Coord {
	if len(cells) == 0 {
		return nil
	}
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	out := make([]core.Coord, len(cells))
	for i, c := range cells {
		out[i] = core.Coord{X: c.X - minX, Y: c.Y - minY}
	}
	slices.SortFunc(out, func(a, b core.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// SignatureOf normalizes cells and encodes them as "x,y;x,y;...".
func SignatureOf(cells []core.Coord) Signature {
	var b strings.Builder
	for _, c := range Normalize(cells) {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}
	return Signature(b.String())
}

// Variants returns the signatures of cells under the eight symmetries of the
// square: four quarter turns of the shape, then four of its mirror image.
// Duplicates produced by symmetric shapes are dropped; order is first-seen.
func Variants(cells []core.Coord) []Signature {
	var out []Signature
	add := func(cs []core.Coord) {
		sig := SignatureOf(cs)
		if !slices.Contains(out, sig) {
			out = append(out, sig)
		}
	}

	mirrored := make([]core.Coord, len(cells))
	for i, c := range cells {
		mirrored[i] = core.Coord{X: -c.X, Y: c.Y}
	}
	for _, start := range [][]core.Coord{cells, mirrored} {
		cur := start
		for i := 0; i < 4; i++ {
			add(cur)
			cur = rotate(cur)
		}
	}
	return out
}

// rotate turns cells a quarter around the origin: (x, y) -> (-y, x).
func rotate(cells []core.Coord) []core.Coord {
	out := make([]core.Coord, len(cells))
	for i, c := range cells {
		out[i] = core.Coord{X: -c.Y, Y: c.X}
	}
	return out
}

// Offsets converts {x, y} pairs into coordinates.
func Offsets(pairs ...[2]int) []core.Coord {
	out := make([]core.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = core.Coord{X: p[0], Y: p[1]}
	}
	return out
}
