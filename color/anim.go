package color

import "axis/mathf"

// CycleHue advances hue by speed while it is in [0, 360) and wraps it to 0
// once it reaches 360. Negative hues are returned unchanged.
func CycleHue(hue, speed float32) float32 {
	switch {
	case hue >= 0 && hue < 360:
		return hue + speed
	case hue >= 360:
		return 0
	}
	return hue
}

// LerpCosine oscillates between lo and 1 as timer advances. lo is clamped
// to [0, 1].
func LerpCosine(timer, lo float32) float32 {
	lo = mathf.Clamp01(lo)
	return ((mathf.Cosf(timer)+1)/2)*(1-lo) + lo
}

// LerpRGBA32Percent blends the color channels of a and b; percent 1 yields a
// and 0 yields b. The result is opaque.
func LerpRGBA32Percent(a, b RGBA32, percent float32) RGBA32 {
	ch := func(x, y uint8) uint8 {
		return uint8(mathf.TweenPercent(float32(x), float32(y), percent))
	}
	return PackRGBA32(RGBA8{
		R: ch(a.R(), b.R()),
		G: ch(a.G(), b.G()),
		B: ch(a.B(), b.B()),
		A: 0xFF,
	})
}
