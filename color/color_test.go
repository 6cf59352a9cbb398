package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSVPrimaries(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    HSVf
	}{
		{255, 0, 0, HSVf{0, 1, 1}},
		{0, 255, 0, HSVf{120, 1, 1}},
		{0, 0, 255, HSVf{240, 1, 1}},
		{255, 255, 0, HSVf{60, 1, 1}},
		{0, 255, 255, HSVf{180, 1, 1}},
		{255, 0, 255, HSVf{300, 1, 1}},
		{0, 0, 0, HSVf{0, 0, 0}},
		{128, 128, 128, HSVf{0, 0, 128.0 / 255}},
	}
	for _, c := range cases {
		got := RGBToHSV(c.r, c.g, c.b)
		assert.InDelta(t, c.want.H, got.H, 1e-3, "h of %v", c)
		assert.InDelta(t, c.want.S, got.S, 1e-5, "s of %v", c)
		assert.InDelta(t, c.want.V, got.V, 1e-5, "v of %v", c)
	}
}

func TestRGBToHSVRedSector(t *testing.T) {
	// red max with blue above green wraps below 360
	got := RGBToHSV(255, 0, 128)
	assert.InDelta(t, 360-60*128.0/255, got.H, 1e-2)
	got = RGBToHSV(255, 128, 0)
	assert.InDelta(t, 60*128.0/255, got.H, 1e-2)
}

func TestHSVToRGB(t *testing.T) {
	assert.Equal(t, RGB8{255, 0, 0}, HSVToRGB(0, 1, 1))
	assert.Equal(t, RGB8{0, 255, 0}, HSVToRGB(120, 1, 1))
	assert.Equal(t, RGB8{0, 0, 255}, HSVToRGB(240, 1, 1))
	assert.Equal(t, RGB8{255, 0, 0}, HSVToRGB(360, 1, 1))
	assert.Equal(t, RGB8{255, 0, 0}, HSVToRGB(720, 3, 2))
	assert.Equal(t, RGB8{0, 0, 0}, HSVToRGB(200, 1, 0))
	assert.Equal(t, RGB8{255, 255, 255}, HSVToRGB(45, 0, 1))
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []RGB8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 0}, {0, 255, 255}, {255, 0, 255}} {
		got := c.HSV().RGB8()
		assert.Equal(t, c, got)
	}
	// arbitrary colors survive within one step of truncation
	for _, c := range []RGB8{{12, 200, 77}, {240, 17, 99}, {33, 66, 250}} {
		got := c.HSV().RGB8()
		assert.InDelta(t, c.R, got.R, 1)
		assert.InDelta(t, c.G, got.G, 1)
		assert.InDelta(t, c.B, got.B, 1)
	}
}

func TestCycleHue(t *testing.T) {
	assert.Equal(t, float32(15), CycleHue(10, 5))
	assert.Equal(t, float32(362), CycleHue(359, 3))
	assert.Equal(t, float32(0), CycleHue(362, 3))
	assert.Equal(t, float32(-4), CycleHue(-4, 3))
}

func TestLerpCosine(t *testing.T) {
	assert.InDelta(t, 1, LerpCosine(0, 0.25), 1e-6)
	assert.InDelta(t, 0.25, LerpCosine(math.Pi, 0.25), 1e-6)
	assert.InDelta(t, 0.5, LerpCosine(math.Pi/2, 0), 1e-6)
	assert.InDelta(t, 1, LerpCosine(math.Pi, 7), 1e-6)
}

func TestLerpRGBA32Percent(t *testing.T) {
	a := PackRGBA32(RGBA(200, 100, 0, 10))
	b := PackRGBA32(RGBA(0, 50, 100, 20))
	assert.Equal(t, RGBA8{200, 100, 0, 255}, LerpRGBA32Percent(a, b, 1).RGBA8())
	assert.Equal(t, RGBA8{0, 50, 100, 255}, LerpRGBA32Percent(a, b, 0).RGBA8())
	assert.Equal(t, RGBA8{100, 75, 50, 255}, LerpRGBA32Percent(a, b, 0.5).RGBA8())
}

func TestPackedFormats(t *testing.T) {
	p := PackRGBA32(RGBA(0x12, 0x34, 0x56, 0x78))
	require.Equal(t, RGBA32(0x12345678), p)
	assert.Equal(t, RGBA(0x12, 0x34, 0x56, 0x78), p.RGBA8())

	p24 := PackRGB24(RGB8{0xAB, 0xCD, 0xEF})
	require.Equal(t, RGB24(0xABCDEF), p24)
	assert.Equal(t, RGB8{0xAB, 0xCD, 0xEF}, p24.RGB8())

	assert.Equal(t, RGBA5551(0xFFFF), PackRGBA5551(RGBA(255, 255, 255, 255)))
	assert.Equal(t, RGBA5551(0xF800), PackRGBA5551(RGBA(255, 0, 0, 0)))
	assert.Equal(t, RGBA(255, 0, 255, 255), PackRGBA5551(RGBA(255, 0, 255, 200)).RGBA8())
	assert.Equal(t, uint8(0), PackRGBA5551(RGBA(1, 2, 3, 127)).RGBA8().A)
}

func TestRGB565(t *testing.T) {
	assert.Equal(t, RGB565(0xF800), PackRGB565(255, 0, 0))
	assert.Equal(t, RGB565(0x07E0), PackRGB565(0, 255, 0))
	assert.Equal(t, RGB565(0x001F), PackRGB565(0, 0, 255))

	r, g, b := PackRGB565(255, 255, 255).RGB888()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	buf := make([]byte, 2)
	RGB565(0xF81F).PutLE(buf)
	assert.Equal(t, []byte{0x1F, 0xF8}, buf)
}

func TestScaleAndFloat(t *testing.T) {
	c := RGB(200, 100, 50)
	assert.Equal(t, RGBA8{99, 49, 24, 255}, c.Scale(0.5))
	assert.Equal(t, c, c.Scale(4))
	assert.Equal(t, RGBA8{0, 0, 0, 255}, c.Scale(-1))
	assert.Equal(t, RGBA8{1, 2, 3, 9}, RGBA(1, 2, 3, 4).WithAlpha(9))

	f := RGBA(255, 0, 51, 255).Float()
	assert.InDelta(t, 0.2, f.B, 1e-6)
	assert.Equal(t, RGBA(255, 0, 51, 255), f.RGBA8())
	assert.Equal(t, RGB8{1, 2, 3}, RGB8{1, 2, 3}.RGBA8().RGB8())
}
