package color

import "axis/mathf"

// RGB8 is an opaque color in 8-bit channels.
type RGB8 struct {
	R, G, B uint8
}

// RGBA8 is a color in 8-bit channels.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGBAf is a color with float channels in [0, 1].
type RGBAf struct {
	R, G, B, A float32
}

// HSVf is hue in degrees [0, 360] with saturation and value in [0, 1].
type HSVf struct {
	H, S, V float32
}

func RGB(r, g, b uint8) RGBA8     { return RGBA8{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) RGBA8 { return RGBA8{R: r, G: g, B: b, A: a} }

func (c RGB8) RGBA8() RGBA8             { return RGBA8{c.R, c.G, c.B, 0xFF} }
func (c RGBA8) RGB8() RGB8              { return RGB8{c.R, c.G, c.B} }
func (c RGBA8) WithAlpha(a uint8) RGBA8 { c.A = a; return c }

// Scale multiplies the color channels by s clamped to [0, 1]. Alpha is kept.
func (c RGBA8) Scale(s float32) RGBA8 {
	t := uint32(mathf.Clamp01(s) * 255)
	mul := func(ch uint8) uint8 {
		return uint8((uint32(ch) * t) / 255)
	}
	return RGBA8{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

func (c RGBA8) Float() RGBAf {
	return RGBAf{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// RGBA8 truncates each clamped channel to 8 bits.
func (c RGBAf) RGBA8() RGBA8 {
	ch := func(v float32) uint8 { return uint8(mathf.Clamp01(v) * 255) }
	return RGBA8{ch(c.R), ch(c.G), ch(c.B), ch(c.A)}
}
