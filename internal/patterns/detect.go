package patterns

import (
	"image/color"

	"lifegrid/internal/core"
)

// Detected is one recognised connected component.
type Detected struct {
	Name     string
	Category Category
	Color    color.RGBA
	Cells    []core.Coord
}

// Detections maps grid positions to the pattern covering them. Only cells of
// recognised components are present.
type Detections struct {
	cols, rows int
	byCell     []*Detected
	found      []*Detected
}

// At returns the pattern covering (x, y), if any.
func (d Detections) At(x, y int) (*Detected, bool) {
	if x < 0 || x >= d.cols || y < 0 || y >= d.rows || d.byCell == nil {
		return nil, false
	}
	p := d.byCell[y*d.cols+x]
	return p, p != nil
}

// Patterns returns each recognised component once, in scan order.
func (d Detections) Patterns() []*Detected { return d.found }

// Len reports the number of recognised components.
func (d Detections) Len() int { return len(d.found) }

// Covered counts cells that belong to a recognised component.
func (d Detections) Covered() int {
	n := 0
	for _, p := range d.found {
		n += len(p.Cells)
	}
	return n
}

// Census counts recognised components by pattern name.
func (d Detections) Census() map[string]int {
	out := make(map[string]int, len(d.found))
	for _, p := range d.found {
		out[p.Name]++
	}
	return out
}

var neighborOffsets = [8]core.Coord{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Detect splits the live cells of g into 8-connected components and matches
// each against the catalog. Every cell is visited at most once, so the scan
// is linear in the grid area.
func Detect(g core.Grid, c *Catalog) Detections {
	rows, cols := g.Rows(), g.Cols()
	if g.Empty() || c == nil {
		return Detections{cols: cols, rows: rows}
	}
	out := Detections{cols: cols, rows: rows, byCell: make([]*Detected, rows*cols)}
	visited := make([]bool, rows*cols)
	var queue []core.Coord

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if visited[idx] || !g.Alive(x, y) {
				continue
			}
			visited[idx] = true
			queue = append(queue[:0], core.Coord{X: x, Y: y})
			for head := 0; head < len(queue); head++ {
				cur := queue[head]
				for _, off := range neighborOffsets {
					nx, ny := cur.X+off.X, cur.Y+off.Y
					if !g.Alive(nx, ny) {
						continue
					}
					n := ny*cols + nx
					if visited[n] {
						continue
					}
					visited[n] = true
					queue = append(queue, core.Coord{X: nx, Y: ny})
				}
			}

			def, ok := c.Match(SignatureOf(queue))
			if !ok {
				continue
			}
			p := &Detected{
				Name:     def.Name,
				Category: def.Category,
				Color:    def.Color,
				Cells:    append([]core.Coord(nil), queue...),
			}
			for _, cell := range p.Cells {
				out.byCell[cell.Y*cols+cell.X] = p
			}
			out.found = append(out.found, p)
		}
	}
	return out
}
