//go:build ebiten

package ui

import (
	"image/color"

	"pixlife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	sim     *session.Session
	visible bool
	panel   *ebiten.Image
	panelW  int
	panelH  int
}

// NewHUD constructs a visible HUD for the session.
func NewHUD(sim *session.Session) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the panel if it is visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := append(StatusLines(h.sim), HelpLine)
	face := basicfont.Face7x13

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(lines)*lineHeight + 2*panelPadding - (lineHeight - textHeight)

	if h.panel == nil || h.panelW != width || h.panelH != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(width, height)
		h.panelW, h.panelH = width, height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == len(lines)-1 {
			clr = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+textHeight-3+i*lineHeight, clr)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

const (
	panelMargin  = 4
	panelPadding = 6
	lineHeight   = 16
	textHeight   = 13
)
