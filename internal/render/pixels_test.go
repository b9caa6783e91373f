package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []bool{true, false, false, true}
	buf := make([]byte, 4*len(cells))
	fillBinaryRGBA(buf, cells, color.White, color.Black)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillBinaryRGBACustomColors(t *testing.T) {
	on := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []bool{false, true}, on, off)
	if !slices.Equal(buf, []byte{1, 2, 3, 255, 10, 200, 30, 255}) {
		t.Fatalf("unexpected pixels %v", buf)
	}
}
