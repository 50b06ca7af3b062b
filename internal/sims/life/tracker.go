package life

import (
	"time"

	"lifegrid/internal/patterns"
)

// Tracker decides when to run pattern recognition for a Life session and
// caches the result. Recognition only runs for Conway's rule, since the
// catalog shapes are Conway shapes, and only on grids up to the session's
// recognition limit. While the simulation runs, results are refreshed at most
// once per interval; when paused they follow every edit.
type Tracker struct {
	catalog  *patterns.Catalog
	interval time.Duration

	current patterns.Detections
	version uint64
	valid   bool
	last    time.Time
}

// NewTracker returns a Tracker matching against catalog.
func NewTracker(catalog *patterns.Catalog, interval time.Duration) *Tracker {
	return &Tracker{catalog: catalog, interval: interval}
}

// Eligible reports whether recognition applies to l at all.
func (t *Tracker) Eligible(l *Life) bool {
	if !l.Rule().SameAs(Conway) {
		return false
	}
	limit := l.RecognizeLimit()
	size := l.Size()
	return limit == 0 || size.W*size.H <= limit
}

// Update returns the detections for the current generation of l, recomputing
// them when the grid changed and the debounce interval allows it.
func (t *Tracker) Update(l *Life, running bool, now time.Time) patterns.Detections {
	if !t.Eligible(l) {
		t.current = patterns.Detections{}
		t.valid = false
		return t.current
	}
	if t.valid && t.version == l.Version() {
		return t.current
	}
	if running && t.valid && now.Sub(t.last) < t.interval {
		return t.current
	}
	t.current = patterns.Detect(l.Grid(), t.catalog)
	t.version = l.Version()
	t.valid = true
	t.last = now
	return t.current
}

// Current returns the last computed detections without recomputing.
func (t *Tracker) Current() patterns.Detections { return t.current }
