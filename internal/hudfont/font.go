// Package hudfont is a 3x5 bitmap font for the viewer overlay. It covers
// digits, upper case letters and the punctuation used in numeric readouts.
// Lower case input is drawn in upper case.
package hudfont

import (
	"image/color"
	"unicode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	cellW = 3
	cellH = 5
)

// Font implements tinyfont.Fonter. Each pixel is drawn as a Scale×Scale
// block.
type Font struct {
	Scale int16
}

// New returns a font drawn at the given integer scale (at least 1).
func New(scale int16) *Font {
	if scale < 1 {
		scale = 1
	}
	return &Font{Scale: scale}
}

var _ tinyfont.Fonter = (*Font)(nil)

func (f *Font) scale() int16 {
	if f == nil || f.Scale < 1 {
		return 1
	}
	return f.Scale
}

func (f *Font) GetYAdvance() uint8 { return uint8((cellH + 1) * f.scale()) }

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	r = unicode.ToUpper(r)
	rows, ok := glyphs[r]
	if !ok {
		r, rows = '?', glyphs['?']
	}
	return glyph{r: r, rows: rows, scale: f.scale()}
}

type glyph struct {
	r     rune
	rows  [cellH]uint8
	scale int16
}

func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	s := g.scale
	for row := int16(0); row < cellH; row++ {
		bits := g.rows[row]
		// bit2 is the leftmost pixel.
		for col := int16(0); col < cellW; col++ {
			if bits&(0b100>>col) == 0 {
				continue
			}
			px := x + col*s
			py := y - (cellH-1-row)*s - (s - 1)
			for dy := int16(0); dy < s; dy++ {
				for dx := int16(0); dx < s; dx++ {
					display.SetPixel(px+dx, py+dy, c)
				}
			}
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	s := g.scale
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    uint8(cellW * s),
		Height:   uint8(cellH * s),
		XAdvance: uint8((cellW + 1) * s),
		XOffset:  0,
		YOffset:  int8(-cellH * s),
	}
}

var glyphs = map[rune][cellH]uint8{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b110, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
	'?': {0b111, 0b001, 0b011, 0b000, 0b010},
}
