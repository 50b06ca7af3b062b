package life

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidCount is returned for neighbor counts outside 0..8.
	ErrInvalidCount = errors.New("neighbor count out of range")
	// ErrInvalidRule is returned when a rule string cannot be parsed.
	ErrInvalidRule = errors.New("invalid rule")
)

// NeighborSet is a set of neighbor counts in 0..8, stored as a bitmask.
type NeighborSet uint16

// NewNeighborSet builds a set from counts, rejecting values outside 0..8.
func NewNeighborSet(counts ...int) (NeighborSet, error) {
	var s NeighborSet
	for _, n := range counts {
		if n < 0 || n > 8 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
		}
		s |= 1 << n
	}
	return s, nil
}

func mustSet(counts ...int) NeighborSet {
	s, err := NewNeighborSet(counts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Has reports whether n is in the set.
func (s NeighborSet) Has(n int) bool {
	return n >= 0 && n <= 8 && s&(1<<n) != 0
}

// Counts lists the members in ascending order.
func (s NeighborSet) Counts() []int {
	var out []int
	for n := 0; n <= 8; n++ {
		if s.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// String concatenates the member digits, e.g. "23".
func (s NeighborSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rule is a life-like birth/survival rule.
type Rule struct {
	Name     string
	Birth    NeighborSet
	Survival NeighborSet
}

// Built-in rules.
var (
	Conway   = Rule{Name: "Conway", Birth: mustSet(3), Survival: mustSet(2, 3)}
	HighLife = Rule{Name: "HighLife", Birth: mustSet(3, 6), Survival: mustSet(2, 3)}
	Seeds    = Rule{Name: "Seeds", Birth: mustSet(2)}
)

// NewRule validates the counts and builds a rule.
func NewRule(name string, birth, survival []int) (Rule, error) {
	b, err := NewNeighborSet(birth...)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q birth: %w", name, err)
	}
	s, err := NewNeighborSet(survival...)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q survival: %w", name, err)
	}
	return Rule{Name: name, Birth: b, Survival: s}, nil
}

// Next returns the state of a cell with the given neighbor count in the next
// generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

// Notation formats the rule as "B3/S23".
func (r Rule) Notation() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// SameAs reports whether both rules have identical birth and survival sets.
func (r Rule) SameAs(o Rule) bool {
	return r.Birth == o.Birth && r.Survival == o.Survival
}

// String returns the name followed by the notation.
func (r Rule) String() string {
	if r.Name == "" {
		return r.Notation()
	}
	return r.Name + " (" + r.Notation() + ")"
}

// Rules returns the built-in rules in menu order.
func Rules() []Rule {
	return []Rule{Conway, HighLife, Seeds}
}

// NextRule returns the built-in following cur in menu order. Custom rules
// cycle back to the first built-in.
func NextRule(cur Rule) Rule {
	rules := Rules()
	for i, r := range rules {
		if r.SameAs(cur) {
			return rules[(i+1)%len(rules)]
		}
	}
	return rules[0]
}

// LookupRule resolves a built-in rule by name, falling back to ParseRule for
// notations such as "B36/S23".
func LookupRule(name string) (Rule, error) {
	for _, r := range Rules() {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return ParseRule(name)
}

// ParseRule accepts "B3/S23" (either order, any case) and the older "23/3"
// survival/birth form. The rule's name is the canonical notation.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	var birth, survival string
	var haveB, haveS bool
	for _, p := range parts {
		switch {
		case len(p) > 0 && (p[0] == 'B' || p[0] == 'b'):
			birth, haveB = p[1:], true
		case len(p) > 0 && (p[0] == 'S' || p[0] == 's'):
			survival, haveS = p[1:], true
		}
	}
	switch {
	case haveB && haveS:
	case !haveB && !haveS:
		survival, birth = parts[0], parts[1]
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	b, err := parseDigits(birth)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}
	sv, err := parseDigits(survival)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q: %w", ErrInvalidRule, s, err)
	}
	r := Rule{Birth: b, Survival: sv}
	r.Name = r.Notation()
	return r, nil
}

func parseDigits(s string) (NeighborSet, error) {
	counts := make([]int, 0, len(s))
	for _, ch := range s {
		n, err := strconv.Atoi(string(ch))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCount, ch)
		}
		counts = append(counts, n)
	}
	return NewNeighborSet(counts...)
}
