package core

import "time"

// FixedStep paces generation advances at a steady ticks-per-second rate,
// independent of how often the frame loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first poll always steps.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepWithClock(tps, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with an injectable time source.
func NewFixedStepWithClock(tps int, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.Reset()
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 1.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset forgets accumulated time so the next poll steps immediately and the
// cadence restarts from there. Call it when resuming from a pause.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// A long stall must not turn into a burst of catch-up ticks.
		f.accumulator = min(f.accumulator, f.step)
		return true
	}
	return false
}
