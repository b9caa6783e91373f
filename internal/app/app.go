//go:build ebiten

package app

import (
	"errors"
	"image/color"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pixlife/internal/config"
	"pixlife/internal/core"
	"pixlife/internal/input"
	"pixlife/internal/render"
	"pixlife/internal/session"
	"pixlife/internal/ui"
)

var keyActions = []struct {
	key    ebiten.Key
	action input.Action
}{
	{ebiten.KeySpace, input.ActionStep},
	{ebiten.KeyP, input.ActionTogglePlay},
	{ebiten.KeyR, input.ActionRandomize},
	{ebiten.KeyC, input.ActionClear},
	{ebiten.KeyS, input.ActionReseed},
}

// Game adapts a simulation session to the ebiten.Game interface.
type Game struct {
	sim     *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep
	logger  log.Logger

	onColor  color.Color
	offColor color.Color

	scale            int
	layoutW, layoutH int
}

// New constructs a Game for the provided session.
func New(sim *session.Session, cfg *config.Config, logger log.Logger) *Game {
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		ticker:   core.NewFixedStep(cfg.Rate),
		logger:   logger,
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		layoutW:  sim.Width(),
		layoutH:  sim.Height(),
		hud:      ui.NewHUD(sim),
	}
	if !cfg.HUD {
		g.hud.Toggle()
	}
	return g
}

// Run opens the window and blocks until it is closed.
func Run(sim *session.Session, cfg *config.Config, logger log.Logger) error {
	game := New(sim, cfg, logger)

	ebiten.SetWindowTitle("Game of life")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(sim.Width()*cfg.Scale, sim.Height()*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.sim.IsRunning() && g.ticker.ShouldStep() {
		g.sim.Tick()
	}

	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			input.Apply(g.sim, ka.action)
			level.Debug(g.logger).Log("msg", "key action", "action", ka.action, "generation", g.sim.Generation())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ToggleGrid()
	}

	g.handlePointer()

	if g.layoutW != g.sim.Width() || g.layoutH != g.sim.Height() {
		if err := g.sim.Resize(g.layoutW, g.layoutH); err != nil {
			level.Warn(g.logger).Log("msg", "resize rejected", "err", err)
		} else {
			level.Info(g.logger).Log("msg", "window resized", "width", g.layoutW, "height", g.layoutH)
		}
	}
	return nil
}

func (g *Game) handlePointer() {
	w, h := g.sim.Width(), g.sim.Height()
	px, py := ebiten.CursorPosition()
	inside := px >= 0 && py >= 0 && px < w*g.scale && py < h*g.scale
	x, y := input.CellAt(px, py, g.scale, g.scale, w, h)
	g.overlay.SetCursor(x, y, inside)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !inside {
			// off-grid press: dead brush, nothing painted yet
			x, y = -1, -1
		}
		g.sim.BeginPaint(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.sim.Paint(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.sim.EndPaint()
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Width(), g.sim.Height(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout sizes the grid to the window. The resize itself is applied on the
// next Update so the session only changes inside the update loop.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = input.GridSize(outsideWidth, outsideHeight, g.scale, g.scale)
	return g.layoutW * g.scale, g.layoutH * g.scale
}
