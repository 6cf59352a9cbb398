package viewer

import (
	"image/color"

	"tinygo.org/x/drivers"

	axiscolor "axis/color"
	"axis/hal"
	"axis/render"
)

var _ drivers.Displayer = (*fbDisplay)(nil)

// fbDisplay adapts the framebuffer to drivers.Displayer for tinyfont.
type fbDisplay struct {
	fb hal.Framebuffer
	t  *render.RGB565Target
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{
		fb: fb,
		t: &render.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
	}
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.t.W), int16(d.t.H)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), axiscolor.RGBA(c.R, c.G, c.B, c.A))
}

func (d *fbDisplay) Display() error {
	return d.fb.Present()
}

// fillRect paints a solid rectangle clipped to the framebuffer.
func (d *fbDisplay) fillRect(x, y, width, height int16, c color.RGBA) {
	fill := axiscolor.RGBA(c.R, c.G, c.B, c.A)
	for py := int(y); py < int(y)+int(height); py++ {
		for px := int(x); px < int(x)+int(width); px++ {
			d.t.SetPixel(px, py, fill)
		}
	}
}
