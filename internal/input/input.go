// Package input holds the driver-independent half of user interaction: the
// keyboard actions both front ends share and the pointer to cell mapping.
package input

import (
	"time"

	"pixlife/internal/session"
)

// Action is a keyboard command understood by every driver.
type Action int

const (
	ActionNone Action = iota
	// ActionStep pauses and advances one generation.
	ActionStep
	// ActionTogglePlay starts or pauses playback.
	ActionTogglePlay
	// ActionRandomize refills the grid from the current random source.
	ActionRandomize
	// ActionClear kills every cell.
	ActionClear
	// ActionReseed refills the grid from a fresh time-based seed.
	ActionReseed
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionStep:       "step",
	ActionTogglePlay: "play",
	ActionRandomize:  "randomize",
	ActionClear:      "clear",
	ActionReseed:     "reseed",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ForKey maps a key name to its action. Names follow the lower-case
// convention bubbletea uses for KeyMsg.String ("p", " ", "space").
func ForKey(key string) Action {
	switch key {
	case " ", "space":
		return ActionStep
	case "p":
		return ActionTogglePlay
	case "r":
		return ActionRandomize
	case "c":
		return ActionClear
	case "s":
		return ActionReseed
	}
	return ActionNone
}

// Apply performs a on s.
func Apply(s *session.Session, a Action) {
	switch a {
	case ActionStep:
		s.Step()
	case ActionTogglePlay:
		s.TogglePlayback()
	case ActionRandomize:
		s.Randomize()
	case ActionClear:
		s.Clear()
	case ActionReseed:
		s.Reseed(time.Now().UnixNano())
	}
}

// CellAt converts a pointer position in surface units into grid coordinates.
// The position is clamped to the surface so drags that leave the window keep
// painting along its edge.
func CellAt(px, py, scaleX, scaleY, w, h int) (x, y int) {
	scaleX, scaleY = max(scaleX, 1), max(scaleY, 1)
	px = clamp(px, 0, w*scaleX-1)
	py = clamp(py, 0, h*scaleY-1)
	return px / scaleX, py / scaleY
}

// GridSize returns the grid dimensions that fit an outer surface, at least
// one cell on each axis.
func GridSize(outerW, outerH, scaleX, scaleY int) (w, h int) {
	scaleX, scaleY = max(scaleX, 1), max(scaleY, 1)
	return max(outerW/scaleX, 1), max(outerH/scaleY, 1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
