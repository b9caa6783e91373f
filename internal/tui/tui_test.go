package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pixlife/internal/config"
	"pixlife/internal/session"
)

func newModel(t *testing.T, w, h int) (*Model, *session.Session) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	sim, err := session.New(cfg.SessionOptions(nil))
	if err != nil {
		t.Fatal(err)
	}
	return New(sim, cfg, nil), sim
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveSession(t *testing.T) {
	m, sim := newModel(t, 10, 8)

	m.Update(key("p"))
	if !sim.IsRunning() {
		t.Fatal("p should start playback")
	}
	m.Update(key("r"))
	if sim.IsRunning() {
		t.Fatal("r should pause playback")
	}
	if sim.Population() == 0 {
		t.Fatal("r should randomize")
	}
	m.Update(key(" "))
	if sim.Generation() != 1 {
		t.Fatalf("space should step once, generation = %d", sim.Generation())
	}
	m.Update(key("c"))
	if sim.Population() != 0 {
		t.Fatal("c should clear")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newModel(t, 4, 4)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not produce tea.QuitMsg")
	}
}

func TestTickAdvancesOnlyWhenRunning(t *testing.T) {
	m, sim := newModel(t, 5, 5)
	sim.Set(2, 1, true)
	sim.Set(2, 2, true)
	sim.Set(2, 3, true)

	_, cmd := m.Update(tickMsg{})
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}
	if sim.Generation() != 0 {
		t.Fatal("paused session advanced on tick")
	}

	sim.SetRunning(true)
	m.Update(tickMsg{})
	if sim.Generation() != 1 {
		t.Fatalf("running session should advance on the first tick, generation = %d", sim.Generation())
	}
}

func TestMousePaint(t *testing.T) {
	m, sim := newModel(t, 6, 3)

	m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !sim.Painting() || !sim.Brush() {
		t.Fatal("press on a dead cell should start a live brush")
	}
	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 40, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 40, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	for _, x := range []int{0, 1, 5} {
		if alive, _ := sim.Get(x, 1); !alive {
			t.Fatalf("cell (%d,1) should be painted", x)
		}
	}
	if sim.Painting() {
		t.Fatal("release should end the gesture")
	}
	if sim.Population() != 3 {
		t.Fatalf("population = %d, want 3", sim.Population())
	}
}

func TestMousePressBelowBoardIgnored(t *testing.T) {
	m, sim := newModel(t, 6, 3)
	m.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sim.Painting() || sim.Population() != 0 {
		t.Fatal("press on the status area should not paint")
	}
}

func TestWindowSizeResizesGrid(t *testing.T) {
	m, sim := newModel(t, 5, 5)
	sim.SetRunning(true)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	wantH := 40 - m.chromeRows()
	if sim.Width() != 40 || sim.Height() != wantH {
		t.Fatalf("grid = %dx%d, want 40x%d", sim.Width(), sim.Height(), wantH)
	}
	if sim.IsRunning() {
		t.Fatal("resize should pause")
	}

	m.Update(key("h"))
	if sim.Height() == wantH {
		t.Fatal("toggling the HUD should give the board different room")
	}
}

func TestView(t *testing.T) {
	m, sim := newModel(t, 3, 2)
	sim.Set(1, 0, true)
	out := m.View()
	if !strings.Contains(out, aliveCell) {
		t.Fatal("view does not draw live cells")
	}
	if !strings.Contains(out, "gen 0  pop 1") {
		t.Fatalf("view missing status: %q", out)
	}
	if !strings.Contains(out, "collecting samples") {
		t.Fatalf("expected chart placeholder with one sample: %q", out)
	}
}

func TestPopulationChart(t *testing.T) {
	if got := populationChart([]int{4, 4, 4}, 20); !strings.Contains(got, "steady at 4") {
		t.Fatalf("flat history: %q", got)
	}
	got := populationChart([]int{1, 5, 3, 8}, 20)
	if !strings.Contains(got, "population") || strings.Count(got, "\n") < chartHeight {
		t.Fatalf("unexpected chart:\n%s", got)
	}
}
