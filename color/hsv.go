package color

import "axis/mathf"

// RGBToHSV converts 8-bit RGB to HSV. Greys have hue and saturation 0.
func RGBToHSV(r, g, b uint8) HSVf {
	fr := float32(r) / 255
	fg := float32(g) / 255
	fb := float32(b) / 255

	cmax := mathf.Max3(fr, fg, fb)
	cmin := mathf.Min3(fr, fg, fb)
	delta := cmax - cmin

	var h, s float32
	if cmax != 0 && delta != 0 {
		s = delta / cmax
		switch cmax {
		case fr:
			h = 60 * mathf.ModF((fg-fb)/delta, 6)
		case fg:
			h = 60 * ((fb-fr)/delta + 2)
		default:
			h = 60 * ((fr-fg)/delta + 4)
		}
	}
	if h < 0 {
		h += 360
	}
	return HSVf{H: h, S: s, V: cmax}
}

// HSVToRGB converts HSV to 8-bit RGB. Hue is clamped to [0, 360] and
// saturation and value to [0, 1]; 360 is treated as red.
func HSVToRGB(h, s, v float32) RGB8 {
	h = mathf.Clamp(h, 0, 360)
	s = mathf.Clamp01(s)
	v = mathf.Clamp01(v)

	c := v * s
	x := c * (1 - mathf.Abs(mathf.ModF(h/60, 2)-1))
	m := v - c

	var rr, gg, bb float32
	switch {
	case mathf.InRangeHIE(h, 0, 60):
		rr, gg, bb = c, x, 0
	case mathf.InRangeHIE(h, 60, 120):
		rr, gg, bb = x, c, 0
	case mathf.InRangeHIE(h, 120, 180):
		rr, gg, bb = 0, c, x
	case mathf.InRangeHIE(h, 180, 240):
		rr, gg, bb = 0, x, c
	case mathf.InRangeHIE(h, 240, 300):
		rr, gg, bb = x, 0, c
	default:
		rr, gg, bb = c, 0, x
	}

	return RGB8{
		R: uint8((rr + m) * 255),
		G: uint8((gg + m) * 255),
		B: uint8((bb + m) * 255),
	}
}

func (c HSVf) RGB8() RGB8 { return HSVToRGB(c.H, c.S, c.V) }

func (c RGB8) HSV() HSVf { return RGBToHSV(c.R, c.G, c.B) }
