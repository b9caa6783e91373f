package render

import "image/color"

// fillBinaryRGBA converts live/dead cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []bool, on, off color.Color) {
	onPx := rgbaBytes(on)
	offPx := rgbaBytes(off)
	for i, alive := range cells {
		base := i * 4
		if alive {
			copy(buf[base:base+4], onPx[:])
			continue
		}
		copy(buf[base:base+4], offPx[:])
	}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
