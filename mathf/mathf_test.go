package mathf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, int16(-3), Min2[int16](-3, 7))
	assert.Equal(t, int16(7), Max2[int16](-3, 7))
	assert.Equal(t, float32(1), Min3[float32](4, 1, 2))
	assert.Equal(t, float32(4), Max3[float32](4, 1, 2))
	assert.Equal(t, int32(5), Min3[int32](5, 5, 5))
}

func TestMinTieKeepsLeftOperand(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	got := Min2(negZero, float32(0))
	assert.True(t, math.Signbit(float64(got)), "tie should return the left operand")
	got = Max2(negZero, float32(0))
	assert.True(t, math.Signbit(float64(got)), "tie should return the left operand")
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int32(4), Abs[int32](-4))
	assert.Equal(t, float32(2.5), Abs[float32](2.5))
	// two's complement: the minimum value has no positive counterpart
	assert.Equal(t, int16(math.MinInt16), Abs[int16](math.MinInt16))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(50, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
	assert.Equal(t, float32(1), Clamp01(3))
	assert.Equal(t, float32(0), Clamp01(-3))
}

func TestRanges(t *testing.T) {
	assert.True(t, InRange(10, 0, 10))
	assert.False(t, InRangeHIE(10, 0, 10))
	assert.True(t, InRangeHIE(0, 0, 10))
}

func TestModF(t *testing.T) {
	cases := []struct{ x, y, want float32 }{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{5.5, 2, 1.5},
		{1, 0, 0},
		{0.25, 1, 0.25},
	}
	for _, c := range cases {
		got := ModF(c.x, c.y)
		assert.InDelta(t, c.want, got, 1e-6, "ModF(%v, %v)", c.x, c.y)
		if c.y != 0 {
			assert.Less(t, Abs(got), Abs(c.y))
		}
	}
}

func TestPowI(t *testing.T) {
	assert.Equal(t, int32(1024), PowI(2, 10))
	assert.Equal(t, int32(1), PowI(5, 0))
	assert.Equal(t, int32(1), PowI(5, -3))
	assert.Equal(t, int32(-27), PowI(-3, 3))
}

func TestPowF(t *testing.T) {
	assert.InDelta(t, 0.125, PowF(2, -3), 1e-7)
	assert.InDelta(t, 6.25, PowF(2.5, 2), 1e-6)
	assert.Equal(t, float32(1), PowF(9, 0))
}

func TestTweenPercent(t *testing.T) {
	assert.Equal(t, float32(10), TweenPercent(10, 20, 1))
	assert.Equal(t, float32(20), TweenPercent(10, 20, 0))
	assert.InDelta(t, 15, TweenPercent(10, 20, 0.5), 1e-6)
}

func TestUnitConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, DToR(180), 1e-12)
	assert.InDelta(t, 180, RToD(math.Pi), 1e-9)
	assert.InDelta(t, 360, SToD(65536), 1e-9)
	assert.InDelta(t, 65536, DToS(360), 1e-6)
	assert.InDelta(t, math.Pi/2, SToR(16384), 1e-9)
	assert.InDelta(t, 16384, RToS(math.Pi/2), 1e-6)
	assert.InDelta(t, float32(math.Pi), DToRF(180), 1e-6)
	assert.InDelta(t, 1.0, CyclesToSec(93750000), 1e-3)
}

type fixedProvider struct{ Std }

func (fixedProvider) Sin(float32) float32 { return 0.5 }

func TestSetProvider(t *testing.T) {
	t.Cleanup(func() { SetProvider(nil) })

	SetProvider(fixedProvider{})
	assert.Equal(t, float32(0.5), Sinf(1))
	assert.InDelta(t, 3, Sqrtf(9), 1e-6)

	SetProvider(nil)
	_, ok := CurrentProvider().(Std)
	require.True(t, ok)
	assert.InDelta(t, math.Sin(1), Sinf(1), 1e-6)
}

func TestTableProvider(t *testing.T) {
	tbl := NewTable(12)
	require.Equal(t, 4096, tbl.Size())
	for _, a := range []float32{0, 0.3, 1, 2.5, -1.2, 4, 6.1} {
		assert.InDelta(t, math.Sin(float64(a)), tbl.Sin(a), 2e-3, "sin(%v)", a)
		assert.InDelta(t, math.Cos(float64(a)), tbl.Cos(a), 2e-3, "cos(%v)", a)
	}
	assert.InDelta(t, math.Pi/2, tbl.Acos(0), 1e-6)
	assert.Equal(t, 16, NewTable(2).Size())
}
