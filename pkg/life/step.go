package life

import (
	"fmt"

	"github.com/pkg/errors"
)

// Topology selects how neighbours beyond the grid edge are treated.
type Topology uint8

const (
	// Bounded treats cells beyond the edge as absent.
	Bounded Topology = iota
	// Toroidal wraps both axes so opposite edges are adjacent. On axes
	// shorter than three cells a neighbour can be counted more than once.
	Toroidal
)

func (t Topology) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// ParseTopology maps a topology name to its value.
func ParseTopology(name string) (Topology, error) {
	switch name {
	case "bounded", "":
		return Bounded, nil
	case "toroidal", "torus":
		return Toroidal, nil
	}
	return Bounded, errors.Errorf("life: unknown topology %q", name)
}

var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Step computes the next generation of a w*h grid into a new slice using the
// B3/S23 rule. cells is only read. Step panics when len(cells) != w*h.
func Step(cells []bool, w, h int, topo Topology) []bool {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		panic(fmt.Sprintf("life: Step on %d cells with dimensions %dx%d", len(cells), w, h))
	}
	next := make([]bool, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := liveNeighbours(cells, w, h, x, y, topo)
			alive := cells[y*w+x]
			next[y*w+x] = n == 3 || (alive && n == 2)
		}
	}
	return next
}

func liveNeighbours(cells []bool, w, h, x, y int, topo Topology) int {
	count := 0
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if topo == Toroidal {
			nx = (nx + w) % w
			ny = (ny + h) % h
		} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
			continue
		}
		if cells[ny*w+nx] {
			count++
		}
	}
	return count
}

// Advance replaces the grid contents with its next generation.
func (g *Grid) Advance(topo Topology) {
	g.cells = Step(g.cells, g.w, g.h, topo)
}
