package mathf

import "math"

// Real is the set of scalar types the helpers accept.
type Real interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// Min2 returns the smaller argument. Ties return a.
func Min2[T Real](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max2 returns the larger argument. Ties return a.
func Max2[T Real](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func Min3[T Real](a, b, c T) T { return Min2(a, Min2(b, c)) }
func Max3[T Real](a, b, c T) T { return Max2(a, Max2(b, c)) }

// Abs returns -x for negative x. For signed integers the minimum value
// negates to itself.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp[T Real](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float32) float32 { return Clamp(v, 0, 1) }

// InRange reports lo <= v <= hi.
func InRange[T Real](v, lo, hi T) bool { return v >= lo && v <= hi }

// InRangeHIE reports lo <= v < hi.
func InRangeHIE[T Real](v, lo, hi T) bool { return v >= lo && v < hi }

// ModF returns x modulo y with the sign of x and magnitude below |y|.
// A zero divisor yields 0.
func ModF(x, y float32) float32 {
	if y == 0 {
		return 0
	}
	return float32(math.Mod(float64(x), float64(y)))
}

// PowI raises base to exp by repeated multiplication. exp <= 0 yields 1.
func PowI(base, exp int32) int32 {
	ret := int32(1)
	for ; exp > 0; exp-- {
		ret *= base
	}
	return ret
}

// PowF raises base to an integer exponent. Negative exponents return the
// reciprocal of the positive power.
func PowF(base float32, exp int32) float32 {
	neg := exp < 0
	if neg {
		exp = -exp
	}
	ret := float32(1)
	for ; exp > 0; exp-- {
		ret *= base
	}
	if neg {
		return 1 / ret
	}
	return ret
}

// TweenPercent blends a and b. p = 1 yields a, p = 0 yields b.
func TweenPercent(a, b, p float32) float32 {
	return a*p + b*(1-p)
}
