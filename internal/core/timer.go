package core

import "time"

// FixedStep decides which driver frames become simulation ticks so that the
// simulation advances at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given ticks
// per second. The first call to ShouldStep always accepts.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int { return int(time.Second / f.step) }

// ShouldStep reports whether the simulation should advance by one tick.
// Backlog beyond one tick is dropped rather than replayed in a burst.
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
		if f.accumulator >= f.step {
			f.accumulator %= f.step
		}
		return true
	}
	return false
}
