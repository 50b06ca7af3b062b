//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it,
// coloring recognised patterns.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, found patterns.Detections, on, off color.Color, scale int) {
	if gp.img == nil || len(cells) != gp.w*gp.h {
		return
	}
	fillPatternRGBA(gp.buf, cells, gp.w, found, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
