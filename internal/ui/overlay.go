//go:build ebiten

package ui

import (
	"image/color"

	"pixlife/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws optional guides on top of the grid: cell borders and the
// cell under the pointer.
type Overlay struct {
	sim       *session.Session
	scale     int
	showGrid  bool
	cursorX   int
	cursorY   int
	hasCursor bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *session.Session, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// ToggleGrid shows or hides cell borders.
func (o *Overlay) ToggleGrid() { o.showGrid = !o.showGrid }

// SetCursor records the cell under the pointer.
func (o *Overlay) SetCursor(x, y int, ok bool) {
	o.cursorX, o.cursorY, o.hasCursor = x, y, ok
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w, h := o.sim.Width(), o.sim.Height()
	scale := max(o.scale, 1)

	if o.showGrid && scale >= 3 {
		line := color.NRGBA{R: 60, G: 60, B: 70, A: 160}
		for x := 1; x < w; x++ {
			o.fillRect(screen, float64(x*scale), 0, 1, float64(h*scale), line)
		}
		for y := 1; y < h; y++ {
			o.fillRect(screen, 0, float64(y*scale), float64(w*scale), 1, line)
		}
	}

	if o.hasCursor {
		col := color.NRGBA{R: 90, G: 160, B: 220, A: 140}
		if o.sim.Painting() && !o.sim.Brush() {
			col = color.NRGBA{R: 220, G: 90, B: 70, A: 140}
		}
		o.fillRect(screen, float64(o.cursorX*scale), float64(o.cursorY*scale), float64(scale), float64(scale), col)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
