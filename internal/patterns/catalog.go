package patterns

import (
	"image/color"
	"slices"
	"strings"

	"lifegrid/internal/core"
)

// Category classifies a shape by how it behaves under Conway's rule.
type Category string

const (
	StillLife  Category = "Still Life"
	Oscillator Category = "Oscillator"
	Spaceship  Category = "Spaceship"
)

// Entry is the literal description of a catalog shape in one fixed phase.
type Entry struct {
	Name     string
	Category Category
	Color    color.RGBA
	Shape    []core.Coord
}

// Definition is a registered shape together with the signatures of its
// rotations and reflections (at most eight).
type Definition struct {
	Name       string
	Category   Category
	Color      color.RGBA
	Signatures []Signature
}

// Matches reports whether sig is one of the definition's variants.
func (d *Definition) Matches(sig Signature) bool {
	return slices.Contains(d.Signatures, sig)
}

// Catalog is an immutable, ordered set of definitions. When two definitions
// share a signature the earlier one wins.
type Catalog struct {
	defs  []*Definition
	index map[Signature]*Definition
}

// NewCatalog expands each entry into its rotation and reflection variants.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{index: make(map[Signature]*Definition)}
	for _, e := range entries {
		d := &Definition{
			Name:       e.Name,
			Category:   e.Category,
			Color:      e.Color,
			Signatures: Variants(e.Shape),
		}
		for _, sig := range d.Signatures {
			if _, taken := c.index[sig]; !taken {
				c.index[sig] = d
			}
		}
		c.defs = append(c.defs, d)
	}
	return c
}

// Match returns the first definition, in catalog order, containing sig.
func (c *Catalog) Match(sig Signature) (*Definition, bool) {
	if c == nil {
		return nil, false
	}
	d, ok := c.index[sig]
	return d, ok
}

// Definitions returns the registered definitions in catalog order.
func (c *Catalog) Definitions() []*Definition {
	if c == nil {
		return nil
	}
	return slices.Clone(c.defs)
}

// Lookup finds a definition by case-insensitive name.
func (c *Catalog) Lookup(name string) (*Definition, bool) {
	if c == nil {
		return nil, false
	}
	for _, d := range c.defs {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return nil, false
}

var (
	colorRed    = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	colorAmber  = color.RGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
	colorOchre  = color.RGBA{R: 0xca, G: 0x8a, B: 0x04, A: 0xff}
	colorGray   = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	colorBlue   = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	colorPurple = color.RGBA{R: 0xa8, G: 0x55, B: 0xf7, A: 0xff}
	colorGreen  = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	colorForest = color.RGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
)

// DefaultEntries returns the built-in shapes in match order.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Name: "Block", Category: StillLife, Color: colorRed,
			Shape: Offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1}),
		},
		{
			Name: "Beehive", Category: StillLife, Color: colorAmber,
			Shape: Offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 2}),
		},
		{
			Name: "Loaf", Category: StillLife, Color: colorOchre,
			Shape: Offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{3, 1}, [2]int{1, 2}, [2]int{3, 2}, [2]int{2, 3}),
		},
		{
			Name: "Boat", Category: StillLife, Color: colorGray,
			Shape: Offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2}),
		},
		{
			Name: "Tub", Category: StillLife, Color: colorGray,
			Shape: Offsets([2]int{1, 0}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2}),
		},
		{
			Name: "Pond", Category: StillLife, Color: colorBlue,
			Shape: Offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{3, 1}, [2]int{0, 2}, [2]int{3, 2}, [2]int{1, 3}, [2]int{2, 3}),
		},
		{
			Name: "Blinker", Category: Oscillator, Color: colorPurple,
			Shape: Offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
		},
		{
			Name: "Toad", Category: Oscillator, Color: colorPurple,
			Shape: Offsets([2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}),
		},
		{
			Name: "Beacon", Category: Oscillator, Color: colorPurple,
			Shape: Offsets([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}, [2]int{3, 3}, [2]int{2, 3}, [2]int{3, 2}),
		},
		{
			Name: "Glider", Category: Spaceship, Color: colorGreen,
			Shape: Offsets([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2}),
		},
		{
			Name: "LWSS", Category: Spaceship, Color: colorForest,
			Shape: Offsets([2]int{1, 0}, [2]int{4, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{4, 2}, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}),
		},
	}
}

// DefaultCatalog builds the catalog of built-in shapes.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultEntries()...)
}
