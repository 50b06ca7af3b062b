// Package life implements life-like cellular automata (Conway's Game of Life,
// HighLife, Seeds and any other B/S rule) on a finite grid.
package life

import (
	"strconv"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
)

// Life holds one simulation session: the current generation and the settings
// used to advance it. Every edit replaces the grid value, so grids returned by
// Grid stay valid snapshots.
type Life struct {
	cfg  Config
	rule Rule

	grid       core.Grid
	cells      []uint8
	generation int
	version    uint64

	rng *core.RNG
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided
// options. Unknown rules fall back to Conway and negative sizes to zero.
func NewWithConfig(cfg Config) *Life {
	cfg.Width = max(cfg.Width, 0)
	cfg.Height = max(cfg.Height, 0)
	rule, err := LookupRule(cfg.Rule)
	if err != nil {
		rule = Conway
	}
	l := &Life{cfg: cfg, rule: rule, rng: core.NewRNG(cfg.Seed)}
	g, _ := core.NewGrid(cfg.Height, cfg.Width)
	l.setGrid(g)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid as a 0/1 buffer. It is rebuilt on every
// change; callers must not modify it.
func (l *Life) Cells() []uint8 { return l.cells }

// Grid returns the current generation.
func (l *Life) Grid() core.Grid { return l.grid }

// Generation returns how many steps have run since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.grid.Population() }

// Version increases whenever the grid changes.
func (l *Life) Version() uint64 { return l.version }

// Rule returns the active rule.
func (l *Life) Rule() Rule { return l.rule }

// SetRule swaps the active rule; the grid is kept.
func (l *Life) SetRule(r Rule) {
	l.rule = r
	l.cfg.Rule = r.Name
}

// Wrap reports whether the grid edges are connected.
func (l *Life) Wrap() bool { return l.cfg.Wrap }

// SetWrap toggles toroidal topology for stepping and shifting.
func (l *Life) SetWrap(wrap bool) { l.cfg.Wrap = wrap }

// Density returns the random fill probability used by Reset.
func (l *Life) Density() float64 { return l.cfg.Density }

// RecognizeLimit returns the largest grid area that pattern recognition runs on.
func (l *Life) RecognizeLimit() int { return l.cfg.RecognizeLimit }

func (l *Life) setGrid(g core.Grid) {
	l.grid = g
	l.cells = g.Bytes()
	l.version++
}

// Reset randomizes the board using the provided seed. A zero seed reuses the
// configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.rng = core.NewRNG(seed)
	g, _ := core.RandomGrid(l.grid.Rows(), l.grid.Cols(), l.cfg.Density, l.rng.Source())
	l.setGrid(g)
	l.generation = 0
}

// Randomize refills the board from the session's random stream without
// reseeding, so repeated calls produce different boards.
func (l *Life) Randomize() {
	g, _ := core.RandomGrid(l.grid.Rows(), l.grid.Cols(), l.cfg.Density, l.rng.Source())
	l.setGrid(g)
	l.generation = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.setGrid(NextGeneration(l.grid, l.rule, l.cfg.Wrap))
	l.generation++
}

// Toggle flips one cell; out-of-bounds coordinates are ignored.
func (l *Life) Toggle(x, y int) {
	if !l.grid.InBounds(x, y) {
		return
	}
	l.setGrid(l.grid.Toggle(x, y))
}

// SetCell sets one cell, skipping the update when nothing changes or the
// cell lies outside the grid.
func (l *Life) SetCell(x, y int, alive bool) {
	if !l.grid.InBounds(x, y) || l.grid.Alive(x, y) == alive {
		return
	}
	l.setGrid(l.grid.SetCell(x, y, alive))
}

// Clear kills every cell and restarts the generation counter.
func (l *Life) Clear() {
	l.setGrid(l.grid.Clear())
	l.generation = 0
}

// Resize replaces the grid with an empty one of the new size.
func (l *Life) Resize(w, h int) {
	g, err := core.NewGrid(h, w)
	if err != nil {
		return
	}
	l.cfg.Width, l.cfg.Height = w, h
	l.setGrid(g)
	l.generation = 0
}

// Shift pans the view by (dx, dy). Without wrap, uncovered cells are filled
// with probability fillDensity.
func (l *Life) Shift(dx, dy int, fillDensity float64) {
	if dx == 0 && dy == 0 {
		return
	}
	l.setGrid(l.grid.Shift(dx, dy, fillDensity, l.cfg.Wrap, l.rng.Source()))
}

// Place stamps block with its top-left corner at (x, y).
func (l *Life) Place(block [][]bool, x, y int) {
	l.setGrid(l.grid.PlacePattern(block, x, y))
}

// LoadPattern clears the board and centres block on it.
func (l *Life) LoadPattern(block [][]bool) {
	w, h := patterns.Seed{Block: block}.Size()
	x, y := patterns.Center(l.grid.Rows(), l.grid.Cols(), w, h)
	l.setGrid(l.grid.Clear().PlacePattern(block, x, y))
	l.generation = 0
}

// Parameters describes the current settings for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.grid.Cols()),
				intParam("h", "Height", l.grid.Rows()),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.cfg.Seed, 10)},
				{Key: "wrap", Label: "Wrap edges", Type: core.ParamTypeBool, Value: strconv.FormatBool(l.cfg.Wrap)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "rule", Label: l.rule.Name, Type: core.ParamTypeString, Value: l.rule.Notation()},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', -1, 64)},
			},
		},
		{
			Name: "Recognition",
			Params: []core.Parameter{
				intParam("recognize_limit", "Cell limit", l.cfg.RecognizeLimit),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

// ParameterControls lists the settings adjustable from the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "recognize_limit", Label: "Recognition limit", Type: core.ParamTypeInt, Step: 5000, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a floating point setting by key.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		l.cfg.Density = min(max(value, 0), 1)
		return true
	}
	return false
}

// SetIntParameter updates an integer setting by key.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "recognize_limit":
		l.cfg.RecognizeLimit = max(value, 0)
		return true
	}
	return false
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	for _, r := range Rules()[1:] {
		rule := r
		core.Register(strings.ToLower(rule.Name), func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			c.Rule = rule.Name
			return NewWithConfig(c)
		})
	}
}
