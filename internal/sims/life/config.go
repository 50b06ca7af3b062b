package life

import "strconv"

// Config controls the Life simulation.
type Config struct {
	Width  int
	Height int

	// Density is the probability that a cell starts alive on Reset.
	Density float64
	Rule    string
	Wrap    bool
	Seed    int64

	// RecognizeLimit is the largest grid area, in cells, for which pattern
	// recognition runs. Zero disables the limit.
	RecognizeLimit int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          50,
		Height:         50,
		Density:        0.2,
		Rule:           Conway.Name,
		Seed:           42,
		RecognizeLimit: 50000,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := LookupRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["wrap"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Wrap = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["recognize_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RecognizeLimit = parsed
		}
	}
	return c
}
