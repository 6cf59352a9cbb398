package vec

import (
	"math"

	"axis/mathf"
)

// Elem is the set of element domains a vector can hold.
type Elem interface {
	int16 | int32 | float32
}

type (
	Vec2s = Vec2[int16]
	Vec2i = Vec2[int32]
	Vec2f = Vec2[float32]

	Vec3s = Vec3[int16]
	Vec3i = Vec3[int32]
	Vec3f = Vec3[float32]

	Vec4s = Vec4[int16]
	Vec4i = Vec4[int32]
	Vec4f = Vec4[float32]
)

func isFloat[T Elem]() bool {
	var z T
	switch any(z).(type) {
	case float32:
		return true
	default:
		return false
	}
}

// dot sums pairwise products of a and b in a 64-bit accumulator and
// narrows the result to T.
func dot[T Elem](a, b []T) T {
	if isFloat[T]() {
		var s float64
		for i := range a {
			s += float64(a[i]) * float64(b[i])
		}
		return T(s)
	}
	var s int64
	for i := range a {
		s += int64(a[i]) * int64(b[i])
	}
	return T(s)
}

// magnitude takes the square root of the wide sum of squares. Integer
// results are truncated toward zero and saturate at the domain maximum.
func magnitude[T Elem](a []T) T {
	if isFloat[T]() {
		var s float64
		for _, c := range a {
			s += float64(c) * float64(c)
		}
		return T(mathf.Sqrtf(float32(s)))
	}
	var s int64
	for _, c := range a {
		s += int64(c) * int64(c)
	}
	return T(min(math.Sqrt(float64(s)), intMax[T]()))
}

func intMax[T Elem]() float64 {
	var z T
	if _, ok := any(z).(int16); ok {
		return math.MaxInt16
	}
	return math.MaxInt32
}
