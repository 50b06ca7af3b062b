//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Status is the per-frame session summary shown at the top of the panel.
type Status struct {
	Generation     int
	Population     int
	Running        bool
	StepsPerSecond int
}

// HUD renders the session panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation and handles
// clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, status Status, found patterns.Detections) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := h.drawStatus(status)
	y = h.drawSnapshot(y)
	h.drawControls()
	h.drawCensus(max(y, controlsTop+len(h.controls)*lineHeight)+sectionGap, found)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus(s Status) int {
	face := basicfont.Face7x13
	state := "running"
	if !s.Running {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("Generation %d", s.Generation),
		fmt.Sprintf("Population %d", s.Population),
		fmt.Sprintf("%s, %d steps/s", state, s.StepsPerSecond),
	}
	y := panelPadding + headerBaseline
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, colorText)
		y += textLine
	}
	return y
}

func (h *HUD) drawSnapshot(y int) int {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if h.isControl(p.Key) {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, colorMuted)
			y += textLine
		}
	}
	return y
}

func (h *HUD) drawCensus(y int, found patterns.Detections) {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Patterns", face, panelPadding, y, colorHeader)
	y += textLine
	census := found.Census()
	if len(census) == 0 {
		text.Draw(h.panel, "none recognised", face, panelPadding, y, colorMuted)
		return
	}
	colors := map[string]color.RGBA{}
	for _, p := range found.Patterns() {
		colors[p.Name] = p.Color
	}
	names := make([]string, 0, len(census))
	for name := range census {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if census[names[i]] != census[names[j]] {
			return census[names[i]] > census[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		h.fillRect(image.Rect(panelPadding, y-9, panelPadding+9, y), colors[name])
		text.Draw(h.panel, fmt.Sprintf("%s x%d", name, census[name]), face, panelPadding+14, y, colorText)
		y += textLine
	}
}

func (h *HUD) isControl(key string) bool {
	for _, c := range h.controls {
		if c.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.floatValue = parsed
		state.hasValue = true
		if state.control.Type == core.ParamTypeInt {
			state.value = strconv.Itoa(int(parsed))
		} else {
			state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	ctrl := state.control
	target := ctrl.Clamp(state.floatValue + float64(direction)*ctrl.Step)
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(math.Round(target)))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, target)
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, colorText)
		valueColor := colorText
		if !state.hasValue {
			valueColor = colorMuted
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.Color) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	h.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, colorText)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	colorHeader = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorText   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorMuted  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	textLine       = 16
	sectionGap     = 12
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	// Leaves room for the status lines and the read-only snapshot values.
	controlsTop = panelPadding + headerBaseline + 10*textLine
)
