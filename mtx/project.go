package mtx

import (
	"math"

	"axis/vec"
)

// LookAt builds a right-handed view matrix looking from eye toward target.
func LookAt(eye, target, up vec.Vec3f) Mtx4F {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mtx4F{
		{s.X, u.X, -f.X, 0},
		{s.Y, u.Y, -f.Y, 0},
		{s.Z, u.Z, -f.Z, 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// Perspective maps a right-handed view frustum to clip space with depth in
// [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, zNear, zFar float32) Mtx4F {
	if aspect == 0 {
		aspect = 1
	}
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (zNear - zFar)
	return Mtx4F{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (zFar + zNear) * nf, -1},
		{0, 0, (2 * zFar * zNear) * nf, 0},
	}
}

func Ortho(left, right, bottom, top, zNear, zFar float32) Mtx4F {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mtx4F{
		{2 / rl, 0, 0, 0},
		{0, 2 / tb, 0, 0},
		{0, 0, -2 / fn, 0},
		{-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1},
	}
}
