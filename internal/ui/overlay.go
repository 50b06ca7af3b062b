//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines recognised patterns on top of the grid.
type Overlay struct {
	scale        int
	showOutlines bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showOutlines: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetScale changes the cell size in pixels.
func (o *Overlay) SetScale(scale int) { o.scale = scale }

// Update toggles outlines with the B key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showOutlines = !o.showOutlines
	}
}

// Draw renders a bounding box around every recognised pattern.
func (o *Overlay) Draw(screen *ebiten.Image, found patterns.Detections) {
	if !o.showOutlines || found.Len() == 0 {
		return
	}
	scale := o.scale
	if scale < 3 {
		// Outlines would cover the cells themselves.
		return
	}
	for _, p := range found.Patterns() {
		minX, minY, maxX, maxY := bounds(p)
		x0 := float64(minX*scale) - 1
		y0 := float64(minY*scale) - 1
		w := float64((maxX-minX+1)*scale) + 2
		h := float64((maxY-minY+1)*scale) + 2
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 160}
		o.line(screen, x0, y0, w, 1, c)
		o.line(screen, x0, y0+h-1, w, 1, c)
		o.line(screen, x0, y0, 1, h, c)
		o.line(screen, x0+w-1, y0, 1, h, c)
	}
}

func (o *Overlay) line(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}

func bounds(p *patterns.Detected) (minX, minY, maxX, maxY int) {
	if len(p.Cells) == 0 {
		return 0, 0, -1, -1
	}
	minX, minY = p.Cells[0].X, p.Cells[0].Y
	maxX, maxY = minX, minY
	for _, c := range p.Cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}
