package life

import (
	"slices"
	"testing"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
)

func TestBlinkerOscillationThroughSim(t *testing.T) {
	life := New(5, 5)
	life.SetCell(2, 1, true)
	life.SetCell(2, 2, true)
	life.SetCell(2, 3, true)

	life.Step()
	cells := life.Cells()
	w := life.Size().W

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	if life.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", life.Generation())
	}
}

func TestGridSnapshotsSurviveSteps(t *testing.T) {
	life := New(6, 6)
	life.Place([][]bool{{true, true, true}}, 1, 2)
	before := life.Grid()
	life.Step()
	if before.Equal(life.Grid()) {
		t.Fatal("step should produce a different grid")
	}
	if !before.Alive(1, 2) || before.Alive(2, 1) {
		t.Fatal("earlier snapshot changed after step")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	life := NewWithConfig(cfg)

	life.Reset(0)
	first := slices.Clone(life.Cells())
	life.Step()
	life.Reset(0)
	if !slices.Equal(first, life.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if life.Generation() != 0 {
		t.Fatal("Reset should restart the generation counter")
	}

	life.Reset(777)
	if slices.Equal(first, life.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestEditsIgnoreOutOfBounds(t *testing.T) {
	life := New(4, 4)
	v := life.Version()
	life.Toggle(-1, 2)
	life.SetCell(4, 0, true)
	life.SetCell(0, 0, false)
	if life.Version() != v {
		t.Fatal("no-op edits should not bump the version")
	}
	life.Toggle(1, 1)
	if !life.Grid().Alive(1, 1) || life.Version() == v {
		t.Fatal("toggle should change the grid")
	}
}

func TestOffGridDrawKeepsCells(t *testing.T) {
	life := New(4, 4)
	before := life.Cells()
	v := life.Version()
	for _, c := range []core.Coord{{X: 4, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: 4}, {X: 10, Y: 10}} {
		life.SetCell(c.X, c.Y, true)
	}
	if life.Version() != v {
		t.Fatalf("off-grid writes moved the version from %d to %d", v, life.Version())
	}
	if &before[0] != &life.Cells()[0] {
		t.Fatal("off-grid writes should not rebuild the cell buffer")
	}

	tracker := NewTracker(patterns.DefaultCatalog(), 0)
	first := tracker.Update(life, false, time.Unix(0, 0))
	life.SetCell(-3, 2, true)
	if v := life.Version(); v != tracker.version {
		t.Fatalf("tracker should still be current, version %d vs %d", v, tracker.version)
	}
	if first.Len() != 0 || life.Population() != 0 {
		t.Fatal("board should stay empty")
	}
}

func TestClearAndResize(t *testing.T) {
	life := New(8, 8)
	life.Reset(5)
	life.Step()
	life.Clear()
	if life.Population() != 0 || life.Generation() != 0 {
		t.Fatal("Clear should empty the board and reset the counter")
	}

	life.Resize(20, 10)
	if s := life.Size(); s.W != 20 || s.H != 10 {
		t.Fatalf("unexpected size after resize %+v", s)
	}
	if len(life.Cells()) != 200 {
		t.Fatalf("expected 200 cells, got %d", len(life.Cells()))
	}
	life.Resize(-1, 4)
	if s := life.Size(); s.W != 20 || s.H != 10 {
		t.Fatal("invalid resize should be ignored")
	}
}

func TestShiftHonoursWrap(t *testing.T) {
	life := New(4, 4)
	life.SetCell(3, 0, true)

	life.SetWrap(true)
	life.Shift(1, 0, 1)
	if !life.Grid().Alive(0, 0) || life.Population() != 1 {
		t.Fatalf("wrapped shift should move the cell across the edge\n%s", life.Grid())
	}

	life.SetWrap(false)
	life.Shift(1, 0, 0)
	if !life.Grid().Alive(1, 0) || life.Population() != 1 {
		t.Fatalf("bounded shift with zero fill should only move content\n%s", life.Grid())
	}
}

func TestLoadPatternCentres(t *testing.T) {
	life := New(50, 50)
	life.Reset(1)
	life.Step()

	seed, _ := patterns.SeedByName("Glider")
	life.LoadPattern(seed.Block)
	if life.Generation() != 0 {
		t.Fatal("loading a pattern should reset the generation counter")
	}
	if life.Population() != 5 {
		t.Fatalf("expected only the glider, got population %d", life.Population())
	}
	// Glider block is 3x3, centred at (23, 23).
	for _, c := range []core.Coord{{X: 24, Y: 23}, {X: 25, Y: 24}, {X: 23, Y: 25}, {X: 24, Y: 25}, {X: 25, Y: 25}} {
		if !life.Grid().Alive(c.X, c.Y) {
			t.Fatalf("expected glider cell at %v", c)
		}
	}
}

func TestSetRuleKeepsGrid(t *testing.T) {
	life := New(5, 5)
	life.Toggle(2, 2)
	life.SetRule(Seeds)
	if life.Rule().Name != "Seeds" || !life.Grid().Alive(2, 2) {
		t.Fatal("SetRule should swap the rule and keep the grid")
	}
}

func TestParameterSetters(t *testing.T) {
	life := New(5, 5)
	if !life.SetFloatParameter("density", 1.5) || life.Density() != 1 {
		t.Fatalf("density should clamp to 1, got %v", life.Density())
	}
	if !life.SetIntParameter("recognize_limit", -10) || life.RecognizeLimit() != 0 {
		t.Fatalf("limit should clamp to 0, got %d", life.RecognizeLimit())
	}
	if life.SetFloatParameter("unknown", 1) || life.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}
	p, ok := life.Parameters().Lookup("rule")
	if !ok || p.Value != "B3/S23" {
		t.Fatalf("unexpected rule parameter %+v", p)
	}
}

func TestRegisteredPresets(t *testing.T) {
	for name, want := range map[string]string{"life": "Conway", "highlife": "HighLife", "seeds": "Seeds"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim, ok := factory(map[string]string{"w": "12", "h": "8"}).(*Life)
		if !ok {
			t.Fatalf("sim %q is not a *Life", name)
		}
		if sim.Rule().Name != want {
			t.Fatalf("sim %q uses rule %s, want %s", name, sim.Rule().Name, want)
		}
		if s := sim.Size(); s.W != 12 || s.H != 8 {
			t.Fatalf("sim %q has size %+v", name, s)
		}
	}
}
