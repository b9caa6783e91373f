package ui

import (
	"fmt"

	"pixlife/internal/session"
)

// StatusLines summarizes the session for on-screen display.
func StatusLines(s *session.Session) []string {
	state := "paused"
	if s.IsRunning() {
		state = "running"
	}
	if s.Stagnant() {
		state += " (stable)"
	}
	return []string{
		fmt.Sprintf("gen %d  pop %d", s.Generation(), s.Population()),
		fmt.Sprintf("%dx%d %s  %s", s.Width(), s.Height(), s.Topology(), state),
	}
}

// HelpLine lists the key bindings.
const HelpLine = "space step  p play  r random  s reseed  c clear  h hud  g grid  q quit"
