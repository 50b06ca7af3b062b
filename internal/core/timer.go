package core

import "time"

// FixedStep helps run simulation updates at a steady rate, independent of
// the frame loop that polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval.
func NewFixedInterval(d time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(d)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the time between ticks.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// Interval returns the time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog so a long pause does not trigger a burst of steps.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
