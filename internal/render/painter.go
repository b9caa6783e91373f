//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one image per grid size and redraws it from cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter that allocates lazily on the first Blit.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit uploads the cells of a w*h grid and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, w, h int, on, off color.Color, scale int) {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return
	}
	if gp.img == nil || gp.w != w || gp.h != h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
