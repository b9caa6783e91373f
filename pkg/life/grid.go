package life

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a grid is asked to take non-positive or
// overflowing dimensions.
var ErrInvalidSize = errors.New("life: invalid grid size")

// Source supplies random cell states.
type Source interface {
	Bool() bool
}

// Grid stores live/dead cells in row-major order.
type Grid struct {
	w, h  int
	cells []bool
}

// New allocates a w*h grid with every cell dead.
func New(w, h int) (*Grid, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 || w > math.MaxInt/h {
		return errors.Wrapf(ErrInvalidSize, "%dx%d", w, h)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice. Callers must not change its length.
func (g *Grid) Cells() []bool { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the state at (x, y). ok is false outside the grid.
func (g *Grid) Get(x, y int) (alive, ok bool) {
	if !g.InBounds(x, y) {
		return false, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set overwrites the cell at (x, y). Out of range coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = alive
}

// Toggle flips the cell at (x, y) and returns its new state.
func (g *Grid) Toggle(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.Index(x, y)
	g.cells[i] = !g.cells[i]
	return g.cells[i]
}

// Randomize assigns every cell independently from src.
func (g *Grid) Randomize(src Source) {
	for i := range g.cells {
		g.cells[i] = src.Bool()
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// Resize changes the dimensions, keeping each cell that still has a place at
// the same (x, y). Cells that come into existence are dead. On error the
// grid is left unchanged.
func (g *Grid) Resize(w, h int) error {
	if err := checkSize(w, h); err != nil {
		return err
	}
	if w == g.w && h == g.h {
		return nil
	}
	next := make([]bool, w*h)
	cw, ch := min(g.w, w), min(g.h, h)
	for y := 0; y < ch; y++ {
		copy(next[y*w:y*w+cw], g.cells[y*g.w:y*g.w+cw])
	}
	g.w, g.h, g.cells = w, h, next
	return nil
}

// Population counts live cells.
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: append([]bool(nil), g.cells...)}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, alive := range g.cells {
		if o.cells[i] != alive {
			return false
		}
	}
	return true
}

// Fingerprint hashes the dimensions and cell states.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.w))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.h))
	h.Write(dims[:])
	row := make([]byte, g.w)
	for y := 0; y < g.h; y++ {
		for x, alive := range g.cells[y*g.w : (y+1)*g.w] {
			row[x] = 0
			if alive {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid one row per line, '#' for live cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.cells[g.Index(x, y)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from rows of text where '#' or 'O' marks a live cell
// and any other byte a dead one. All rows must have the same length.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "no rows")
	}
	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.w {
			return nil, errors.Errorf("life: row %d has length %d, want %d", y, len(row), g.w)
		}
		for x := 0; x < len(row); x++ {
			g.cells[g.Index(x, y)] = row[x] == '#' || row[x] == 'O'
		}
	}
	return g, nil
}
