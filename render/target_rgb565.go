package render

import "axis/color"

// RGB565Target renders into a little-endian RGB565 buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c color.RGBA8) {
	if !t.valid() {
		return
	}
	p := color.PackRGB565(c.R, c.G, c.B)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			p.PutLE(t.Buf[off:])
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA8) {
	if !t.valid() {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	color.PackRGB565(c.R, c.G, c.B).PutLE(t.Buf[off:])
}

// Pixel returns the RGB565 value at (x, y), or 0 outside the target.
func (t *RGB565Target) Pixel(x, y int) color.RGB565 {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return 0
	}
	return color.RGB565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}
