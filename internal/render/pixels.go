package render

import (
	"image/color"

	"lifegrid/internal/patterns"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPatternRGBA paints like fillBinaryRGBA, but live cells that belong to a
// recognised pattern take the pattern's color.
func fillPatternRGBA(buf []byte, cells []uint8, cols int, found patterns.Detections, on, off color.Color) {
	fillBinaryRGBA(buf, cells, on, off)
	if cols <= 0 || found.Len() == 0 {
		return
	}
	for _, p := range found.Patterns() {
		for _, c := range p.Cells {
			i := c.Y*cols + c.X
			if i < 0 || i >= len(cells) || cells[i] == 0 {
				continue
			}
			base := i * 4
			buf[base+0] = p.Color.R
			buf[base+1] = p.Color.G
			buf[base+2] = p.Color.B
			buf[base+3] = p.Color.A
		}
	}
}

// CellColor returns the display color for a single cell.
func CellColor(alive bool, p *patterns.Detected, on, off color.RGBA) color.RGBA {
	switch {
	case !alive:
		return off
	case p != nil:
		return p.Color
	default:
		return on
	}
}
