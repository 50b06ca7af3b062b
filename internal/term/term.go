// Package term renders a Life session in a terminal using tcell. Each grid
// cell occupies two columns so cells come out roughly square.
package term

import (
	"context"
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

var (
	onColor  = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
	offColor = color.RGBA{R: 0x0a, G: 0x0a, B: 0x10, A: 0xff}
)

// Viewer drives a Life session from terminal input.
type Viewer struct {
	screen  tcell.Screen
	sim     *life.Life
	tracker *life.Tracker
	stepper *core.FixedStep
	found   patterns.Detections

	running bool
	seed    int64
	seedIdx int

	buttons   tcell.ButtonMask
	drawValue bool
}

// New returns a Viewer for sim. The screen must already be initialised.
func New(screen tcell.Screen, sim *life.Life, tracker *life.Tracker, interval time.Duration, seed int64) *Viewer {
	screen.EnableMouse()
	return &Viewer{
		screen:  screen,
		sim:     sim,
		tracker: tracker,
		stepper: core.NewFixedInterval(interval),
		seed:    seed,
	}
}

// Running reports whether the simulation advances on its own.
func (v *Viewer) Running() bool { return v.running }

// Detections returns the patterns recognized for the last drawn frame.
func (v *Viewer) Detections() patterns.Detections { return v.found }

// Run processes input and redraws until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	v.Tick(time.Now())
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
		case now := <-frame.C:
			v.Tick(now)
		}
		v.Draw()
	}
}

// Tick advances the simulation when it is due and refreshes recognition.
func (v *Viewer) Tick(now time.Time) {
	if v.running && v.stepper.ShouldStepAt(now) {
		v.sim.Step()
	}
	v.found = v.tracker.Update(v.sim, v.running, now)
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		v.running = true
	case tcell.KeyLeft:
		v.sim.Shift(1, 0, 0)
	case tcell.KeyRight:
		v.sim.Shift(-1, 0, 0)
	case tcell.KeyUp:
		v.sim.Shift(0, 1, 0)
	case tcell.KeyDown:
		v.sim.Shift(0, -1, 0)
	case tcell.KeyRune:
		return v.handleRune(ev.Rune())
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		v.running = !v.running
	case 'n':
		v.running = false
		v.sim.Step()
	case 'r':
		v.sim.Reset(v.seed)
	case 's':
		v.sim.Randomize()
	case 'c':
		v.running = false
		v.sim.Clear()
	case 'w':
		v.sim.SetWrap(!v.sim.Wrap())
	case 'g':
		v.sim.SetRule(life.NextRule(v.sim.Rule()))
	case 'p':
		lib := patterns.Library()
		v.sim.LoadPattern(lib[v.seedIdx%len(lib)].Block)
		v.seedIdx++
		v.running = false
	case '+', '=':
		v.stepper.SetInterval(max(v.stepper.Interval()/2, 10*time.Millisecond))
	case '-':
		v.stepper.SetInterval(min(v.stepper.Interval()*2, 2*time.Second))
	}
	return true
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	x, y := mx/2, my
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && v.buttons&tcell.Button1 == 0 {
		v.drawValue = !v.sim.Grid().Alive(x, y)
	}
	if pressed {
		v.sim.SetCell(x, y, v.drawValue)
	}
	v.buttons = ev.Buttons()
}

// Draw paints the grid and the status lines below it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	g := v.sim.Grid()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p, _ := v.found.At(x, y)
			c := render.CellColor(g.Alive(x, y), p, onColor, offColor)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			v.screen.SetContent(x*2, y, ' ', nil, style)
			v.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	v.drawText(0, g.Rows(), v.statusLine())
	v.drawText(0, g.Rows()+1, censusLine(v.found))
	v.screen.Show()
}

func (v *Viewer) statusLine() string {
	state := "paused"
	if v.running {
		state = "running"
	}
	wrap := "bounded"
	if v.sim.Wrap() {
		wrap = "wrap"
	}
	return fmt.Sprintf("gen %d  pop %d  %s  %s  %s",
		v.sim.Generation(), v.sim.Population(), v.sim.Rule().Notation(), wrap, state)
}

func censusLine(found patterns.Detections) string {
	census := found.Census()
	if len(census) == 0 {
		return "no known patterns"
	}
	names := make([]string, 0, len(census))
	for name := range census {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s x%d", name, census[name])
	}
	return strings.Join(parts, ", ")
}

func (v *Viewer) drawText(x, y int, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
