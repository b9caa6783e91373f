package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstCallAccepts(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatal("first frame should be accepted")
	}
	if fs.ShouldStep() {
		t.Fatal("second frame at the same instant should be rejected")
	}
}

func TestFixedStepRate(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()

	accepted := 0
	for i := 0; i < 60; i++ {
		clock.advance(time.Second / 60)
		if fs.ShouldStep() {
			accepted++
		}
	}
	if accepted < 9 || accepted > 11 {
		t.Fatalf("accepted %d ticks in one second at 10 TPS", accepted)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.ShouldStep()
	clock.advance(5 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after a long stall")
	}
	accepted := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			accepted++
		}
	}
	if accepted != 0 {
		t.Fatalf("replayed %d backlog ticks without time passing", accepted)
	}
	clock.advance(time.Second / 10)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick once a full step has elapsed after the stall")
	}
}

func TestFixedStepSetTPS(t *testing.T) {
	fs, _ := newTestStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("non-positive TPS should default to 60, got %d", fs.TPS())
	}
	fs.SetTPS(25)
	if fs.TPS() != 25 {
		t.Fatalf("TPS() = %d, want 25", fs.TPS())
	}
}
