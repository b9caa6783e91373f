// Package tui drives a session from a terminal. Each cell is two columns
// wide so the board keeps roughly square proportions.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/guptarohit/asciigraph"

	"pixlife/internal/config"
	"pixlife/internal/core"
	"pixlife/internal/input"
	"pixlife/internal/session"
	"pixlife/internal/ui"
)

const (
	cellWidth   = 2
	chartHeight = 6
	aliveCell   = "██"
	deadCell    = "  "
)

var (
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	chartStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

// Model is the bubbletea model wrapping a session.
type Model struct {
	sim    *session.Session
	ticker *core.FixedStep
	frame  time.Duration
	logger log.Logger

	showHUD bool
	width   int
	height  int
}

// New returns a model for sim using the frame and generation rates in cfg.
func New(sim *session.Session, cfg *config.Config, logger log.Logger) *Model {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Model{
		sim:     sim,
		ticker:  core.NewFixedStep(cfg.Rate),
		frame:   time.Second / time.Duration(max(cfg.FPS, 1)),
		logger:  log.With(logger, "component", "tui"),
		showHUD: cfg.HUD,
	}
}

// Run starts the terminal program and blocks until the user quits.
func Run(sim *session.Session, cfg *config.Config, logger log.Logger) error {
	_, err := tea.NewProgram(New(sim, cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd { return m.tick() }

// Update handles keys, mouse, terminal resizes and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fitGrid()
	case tickMsg:
		if m.sim.IsRunning() && m.ticker.ShouldStep() {
			m.sim.Tick()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "h":
		m.showHUD = !m.showHUD
		m.fitGrid()
	default:
		if a := input.ForKey(key); a != input.ActionNone {
			input.Apply(m.sim, a)
			level.Debug(m.logger).Log("msg", "key action", "action", a, "generation", m.sim.Generation())
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	w, h := m.sim.Width(), m.sim.Height()
	x, y := input.CellAt(msg.X, msg.Y, cellWidth, 1, w, h)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y < h && msg.X < w*cellWidth {
			m.sim.BeginPaint(x, y)
		}
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.sim.Paint(x, y)
	case msg.Action == tea.MouseActionRelease:
		m.sim.EndPaint()
	}
}

// chromeRows is the number of terminal rows below the board.
func (m *Model) chromeRows() int {
	rows := 2
	if m.showHUD {
		rows += chartHeight + 2
	}
	return rows
}

func (m *Model) fitGrid() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	w, h := input.GridSize(m.width, m.height-m.chromeRows(), cellWidth, 1)
	if w == m.sim.Width() && h == m.sim.Height() {
		return
	}
	if err := m.sim.Resize(w, h); err != nil {
		level.Warn(m.logger).Log("msg", "resize rejected", "err", err)
		return
	}
	level.Info(m.logger).Log("msg", "terminal resized", "width", w, "height", h)
}

// View renders the board followed by the status lines and, with the HUD on,
// a population chart.
func (m *Model) View() string {
	var b strings.Builder
	w, h := m.sim.Width(), m.sim.Height()
	cells := m.sim.Cells()
	row := strings.Builder{}
	for y := 0; y < h; y++ {
		row.Reset()
		for x := 0; x < w; x++ {
			if cells[y*w+x] {
				row.WriteString(aliveCell)
			} else {
				row.WriteString(deadCell)
			}
		}
		b.WriteString(aliveStyle.Render(row.String()))
		b.WriteByte('\n')
	}

	status := ui.StatusLines(m.sim)
	b.WriteString(statusStyle.Render(strings.Join(status, "  |  ")))
	b.WriteByte('\n')
	b.WriteString(dimStyle.Render(ui.HelpLine))
	if m.showHUD {
		b.WriteByte('\n')
		b.WriteString(chartStyle.Render(populationChart(m.sim.History(), max(m.width-12, 10))))
	}
	return b.String()
}

func populationChart(history []int, width int) string {
	if len(history) < 2 {
		return "population: collecting samples"
	}
	data := make([]float64, len(history))
	flat := true
	for i, v := range history {
		data[i] = float64(v)
		if v != history[0] {
			flat = false
		}
	}
	if flat {
		return fmt.Sprintf("population steady at %d", history[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
}
