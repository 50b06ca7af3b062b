//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gridSizes = []int{25, 50, 100, 200}

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	tracker *life.Tracker
	stepper *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	found   patterns.Detections

	onColor  color.Color
	offColor color.Color

	scale    int
	running  bool
	tickOnce bool
	seed     int64
	seedIdx  int

	drawing   bool
	drawValue bool
	panning   bool
	panX      int
	panY      int
}

// New constructs a Game for the provided session.
func New(sim *life.Life, cfg *Config) *Game {
	g := &Game{
		sim:      sim,
		tracker:  life.NewTracker(patterns.DefaultCatalog(), cfg.Debounce),
		stepper:  core.NewFixedInterval(cfg.Interval),
		overlay:  ui.NewOverlay(cfg.Scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		onColor:  color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff},
		offColor: color.RGBA{R: 0x0a, G: 0x0a, B: 0x10, A: 0xff},
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
	g.resetPainter()
	return g
}

func (g *Game) resetPainter() {
	s := g.sim.Size()
	g.painter = render.NewGridPainter(s.W, s.H)
}

// WindowSize returns the outer size for the current grid and panel.
func (g *Game) WindowSize() (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	g.overlay.Update()
	s := g.sim.Size()
	g.hud.Update(s.W * g.scale)

	if (g.running && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.found = g.tracker.Update(g.sim, g.running, time.Now())
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.running = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.running = false
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.running = false
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.sim.SetWrap(!g.sim.Wrap())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.sim.SetRule(life.NextRule(g.sim.Rule()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		lib := patterns.Library()
		g.sim.LoadPattern(lib[g.seedIdx%len(lib)].Block)
		g.seedIdx++
		g.running = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.cycleSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.stepper.SetInterval(max(g.stepper.Interval()/2, 10*time.Millisecond))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.stepper.SetInterval(min(g.stepper.Interval()*2, 2*time.Second))
	}

	dx, dy := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dy++
	}
	// Arrow keys move the camera, so content moves the other way.
	g.sim.Shift(-dx, -dy, 0)
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	inGrid := g.sim.Grid().InBounds(cx, cy) && mx >= 0 && my >= 0

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inGrid {
		g.drawing = true
		g.drawValue = !g.sim.Grid().Alive(cx, cy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.drawing = false
	}
	if g.drawing && inGrid {
		g.sim.SetCell(cx, cy, g.drawValue)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.panning = true
		g.panX, g.panY = cx, cy
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.panning = false
	}
	if g.panning && (cx != g.panX || cy != g.panY) {
		g.sim.Shift(cx-g.panX, cy-g.panY, 0)
		g.panX, g.panY = cx, cy
	}
}

func (g *Game) cycleSize() {
	cur := g.sim.Size().W
	next := gridSizes[0]
	for i, s := range gridSizes {
		if s == cur {
			next = gridSizes[(i+1)%len(gridSizes)]
			break
		}
	}
	g.running = false
	g.sim.Resize(next, next)
	g.scale = max(1, 500/next)
	g.overlay.SetScale(g.scale)
	g.resetPainter()
	ebiten.SetWindowSize(g.WindowSize())
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.found, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.found)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale, ui.Status{
		Generation:     g.sim.Generation(),
		Population:     g.sim.Population(),
		Running:        g.running,
		StepsPerSecond: int(time.Second / g.stepper.Interval()),
	}, g.found)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
