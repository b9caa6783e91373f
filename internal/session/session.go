// Package session couples a life grid with playback, painting and a seeded
// random source. Every manual edit issued through a Session pauses playback;
// the grid itself knows nothing about that rule.
//
// A Session is not safe for concurrent use. Drivers call it from their
// update loop only.
package session

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"pixlife/pkg/core"
	"pixlife/pkg/life"
)

// DefaultHistoryLen is the number of population samples kept when Options
// leaves HistoryLen unset.
const DefaultHistoryLen = 120

// Options configures a new Session.
type Options struct {
	Width    int
	Height   int
	Seed     int64
	Topology life.Topology

	// HistoryLen bounds the population history. Zero selects
	// DefaultHistoryLen.
	HistoryLen int

	Logger log.Logger
}

// Session is the simulation state shared by the interaction drivers.
type Session struct {
	grid *life.Grid
	topo life.Topology
	rng  *core.RNG

	running  bool
	painting bool
	brush    bool

	generation int
	history    []int
	historyLen int
	prints     []string

	logger log.Logger
}

// New creates a session with an all-dead grid.
func New(opts Options) (*Session, error) {
	grid, err := life.New(opts.Width, opts.Height)
	if err != nil {
		return nil, errors.Wrap(err, "session")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	n := opts.HistoryLen
	if n <= 0 {
		n = DefaultHistoryLen
	}
	s := &Session{
		grid:       grid,
		topo:       opts.Topology,
		rng:        core.NewRNG(opts.Seed),
		historyLen: n,
		logger:     log.With(logger, "component", "session"),
	}
	s.resetHistory()
	return s, nil
}

// Width returns the grid width in cells.
func (s *Session) Width() int { return s.grid.Width() }

// Height returns the grid height in cells.
func (s *Session) Height() int { return s.grid.Height() }

// Get returns the state of (x, y); ok is false outside the grid.
func (s *Session) Get(x, y int) (alive, ok bool) { return s.grid.Get(x, y) }

// Cells exposes the row-major cell slice for rendering. It is replaced on
// every generation and resize, so callers must not hold on to it.
func (s *Session) Cells() []bool { return s.grid.Cells() }

// Grid returns a copy of the current grid.
func (s *Session) Grid() *life.Grid { return s.grid.Clone() }

// Topology reports the edge policy used for stepping.
func (s *Session) Topology() life.Topology { return s.topo }

// Seed reports the seed of the current random source.
func (s *Session) Seed() int64 { return s.rng.Seed() }

// IsRunning reports whether ticks advance the simulation.
func (s *Session) IsRunning() bool { return s.running }

// SetRunning starts or pauses playback.
func (s *Session) SetRunning(running bool) { s.running = running }

// TogglePlayback flips the running flag and returns the new value.
func (s *Session) TogglePlayback() bool {
	s.running = !s.running
	return s.running
}

// Generation returns the number of generations since the last structural
// reset (resize, clear or randomize).
func (s *Session) Generation() int { return s.generation }

// Population counts live cells.
func (s *Session) Population() int { return s.grid.Population() }

// History returns the recorded population samples, oldest first.
func (s *Session) History() []int { return append([]int(nil), s.history...) }

// Stagnant reports whether the last generation reproduced one of the two
// before it, i.e. the board is a still life or a period-2 oscillator.
func (s *Session) Stagnant() bool {
	n := len(s.prints)
	if n < 2 {
		return false
	}
	last := s.prints[n-1]
	for _, p := range s.prints[max(0, n-3) : n-1] {
		if p == last {
			return true
		}
	}
	return false
}

// Tick advances one generation when playback is running and reports whether
// it did. It never changes the running flag.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	s.advance()
	return true
}

// Step pauses playback and advances exactly one generation.
func (s *Session) Step() {
	s.pause()
	s.advance()
}

func (s *Session) advance() {
	s.grid.Advance(s.topo)
	s.generation++
	s.record()
}

// Resize pauses playback and reshapes the grid, keeping cells at their
// coordinates. Invalid sizes leave the grid unchanged.
func (s *Session) Resize(w, h int) error {
	s.pause()
	if w == s.grid.Width() && h == s.grid.Height() {
		return nil
	}
	if err := s.grid.Resize(w, h); err != nil {
		return errors.Wrap(err, "session: resize")
	}
	s.painting = false
	s.resetHistory()
	level.Debug(s.logger).Log("msg", "resized", "width", w, "height", h)
	return nil
}

// Randomize pauses playback and fills the grid from the session's random
// source. Successive calls continue the same sequence.
func (s *Session) Randomize() {
	s.pause()
	s.grid.Randomize(s.rng)
	s.resetHistory()
	level.Debug(s.logger).Log("msg", "randomized", "seed", s.rng.Seed(), "population", s.grid.Population())
}

// Reseed replaces the random source and randomizes the grid with it.
func (s *Session) Reseed(seed int64) {
	s.rng = core.NewRNG(seed)
	s.Randomize()
}

// Clear pauses playback and kills every cell.
func (s *Session) Clear() {
	s.pause()
	s.grid.Clear()
	s.resetHistory()
	level.Debug(s.logger).Log("msg", "cleared")
}

// Set pauses playback and overwrites one cell.
func (s *Session) Set(x, y int, alive bool) {
	s.pause()
	s.grid.Set(x, y, alive)
	s.edited()
}

// Toggle pauses playback and flips one cell, returning its new state.
func (s *Session) Toggle(x, y int) bool {
	s.pause()
	alive := s.grid.Toggle(x, y)
	s.edited()
	return alive
}

// BeginPaint starts a drag gesture at (x, y). The brush becomes the opposite
// of the pressed cell (dead when the press is off the grid) and the pressed
// cell is painted with it.
func (s *Session) BeginPaint(x, y int) {
	s.pause()
	alive, ok := s.grid.Get(x, y)
	s.brush = ok && !alive
	s.painting = true
	s.grid.Set(x, y, s.brush)
	s.edited()
}

// Paint applies the brush to (x, y) while a gesture is active.
func (s *Session) Paint(x, y int) {
	if !s.painting {
		return
	}
	s.pause()
	s.grid.Set(x, y, s.brush)
	s.edited()
}

// EndPaint finishes the current gesture.
func (s *Session) EndPaint() { s.painting = false }

// Painting reports whether a drag gesture is active.
func (s *Session) Painting() bool { return s.painting }

// Brush returns the value applied by the current or last gesture.
func (s *Session) Brush() bool { return s.brush }

func (s *Session) pause() {
	if s.running {
		level.Debug(s.logger).Log("msg", "paused by edit", "generation", s.generation)
	}
	s.running = false
}

// edited drops the fingerprints so a hand-made change is never reported as
// stagnation.
func (s *Session) edited() {
	s.prints = s.prints[:0]
}

func (s *Session) resetHistory() {
	s.generation = 0
	s.history = s.history[:0]
	s.prints = s.prints[:0]
	s.record()
}

func (s *Session) record() {
	s.history = append(s.history, s.grid.Population())
	if len(s.history) > s.historyLen {
		s.history = s.history[1:]
	}
	s.prints = append(s.prints, s.grid.Fingerprint())
	if len(s.prints) > 3 {
		s.prints = s.prints[1:]
	}
}
