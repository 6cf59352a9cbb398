package color

// RGBA32 packs 8-bit channels as 0xRRGGBBAA.
type RGBA32 uint32

func PackRGBA32(c RGBA8) RGBA32 {
	return RGBA32(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
}

func (p RGBA32) R() uint8 { return uint8(p >> 24) }
func (p RGBA32) G() uint8 { return uint8(p >> 16) }
func (p RGBA32) B() uint8 { return uint8(p >> 8) }
func (p RGBA32) A() uint8 { return uint8(p) }

func (p RGBA32) RGBA8() RGBA8 { return RGBA8{p.R(), p.G(), p.B(), p.A()} }

// RGB24 packs 8-bit channels as 0x00RRGGBB.
type RGB24 uint32

func PackRGB24(c RGB8) RGB24 {
	return RGB24(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

func (p RGB24) RGB8() RGB8 { return RGB8{uint8(p >> 16), uint8(p >> 8), uint8(p)} }

// RGBA5551 packs 5 bits per color channel and a 1-bit alpha, red in the
// high bits.
type RGBA5551 uint16

// PackRGBA5551 keeps the top 5 bits of each channel. Alpha is set when
// c.A >= 128.
func PackRGBA5551(c RGBA8) RGBA5551 {
	var a uint16
	if c.A >= 0x80 {
		a = 1
	}
	return RGBA5551(uint16(c.R>>3)<<11 | uint16(c.G>>3)<<6 | uint16(c.B>>3)<<1 | a)
}

func (p RGBA5551) RGBA8() RGBA8 {
	r := (p >> 11) & 0x1F
	g := (p >> 6) & 0x1F
	b := (p >> 1) & 0x1F
	var a uint8
	if p&1 != 0 {
		a = 0xFF
	}
	return RGBA8{
		R: uint8((r * 255) / 31),
		G: uint8((g * 255) / 31),
		B: uint8((b * 255) / 31),
		A: a,
	}
}

// RGB565 is the 16-bit framebuffer format: 5 bits red, 6 green, 5 blue.
type RGB565 uint16

func PackRGB565(r, g, b uint8) RGB565 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return RGB565((rr << 11) | (gg << 5) | bb)
}

// RGB888 expands p back to 8-bit channels.
func (p RGB565) RGB888() (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PutLE writes p into b[0:2] in little-endian order.
func (p RGB565) PutLE(b []byte) {
	b[0] = byte(p)
	b[1] = byte(p >> 8)
}
