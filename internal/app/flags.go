package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Density float64
	Rule    string
	Wrap    bool

	// Interval is the time between generations while running.
	Interval time.Duration
	// Debounce is the minimum time between pattern scans while running.
	Debounce       time.Duration
	RecognizeLimit int
	HUDWidth       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:            "life",
		Scale:          10,
		TPS:            60,
		Seed:           42,
		Width:          50,
		Height:         50,
		Density:        0.2,
		Interval:       100 * time.Millisecond,
		Debounce:       500 * time.Millisecond,
		RecognizeLimit: 50000,
		HUDWidth:       220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.SimNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "initial probability of a live cell")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, overrides the sim's default")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "connect opposite edges (torus)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "minimum time between pattern scans while running")
	fs.IntVar(&c.RecognizeLimit, "recognize-limit", c.RecognizeLimit, "largest grid area to scan for patterns (0 = no limit)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "side panel width in pixels (0 hides it)")
}

// SimConfig converts the flags into the sim's key/value configuration.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":               strconv.Itoa(c.Width),
		"h":               strconv.Itoa(c.Height),
		"density":         strconv.FormatFloat(c.Density, 'f', -1, 64),
		"wrap":            strconv.FormatBool(c.Wrap),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"recognize_limit": strconv.Itoa(c.RecognizeLimit),
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	return m
}

// NewLife builds the configured simulation and seeds it.
func (c *Config) NewLife() (*life.Life, error) {
	if c.Rule != "" {
		if _, err := life.LookupRule(c.Rule); err != nil {
			return nil, err
		}
	}
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", c.Sim, strings.Join(core.SimNames(), ", "))
	}
	l, ok := factory(c.SimConfig()).(*life.Life)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a life-like automaton", c.Sim)
	}
	if c.Rule != "" {
		r, _ := life.LookupRule(c.Rule)
		l.SetRule(r)
	}
	l.Reset(c.Seed)
	return l, nil
}
