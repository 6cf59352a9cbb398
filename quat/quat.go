package quat

import (
	"axis/mathf"
	"axis/vec"
)

// QuatF is a quaternion with vector part (X, Y, Z) and scalar part W.
type QuatF struct {
	X, Y, Z, W float32
}

var (
	Identity  = QuatF{0, 0, 0, 1}
	NIdentity = QuatF{0, 0, 0, -1}
	XHat      = QuatF{1, 0, 0, 0}
	YHat      = QuatF{0, 1, 0, 0}
	ZHat      = QuatF{0, 0, 1, 0}
	XNHat     = QuatF{-1, 0, 0, 0}
	YNHat     = QuatF{0, -1, 0, 0}
	ZNHat     = QuatF{0, 0, -1, 0}
)

func (q QuatF) Vec4() vec.Vec4f    { return vec.Vec4f(q) }
func FromVec4(v vec.Vec4f) QuatF   { return QuatF(v) }
func (q QuatF) Vector() vec.Vec3f  { return vec.Vec3f{X: q.X, Y: q.Y, Z: q.Z} }
func (q QuatF) Equal(r QuatF) bool { return q == r }

func (q QuatF) Add(r QuatF) QuatF         { return QuatF(q.Vec4().Add(r.Vec4())) }
func (q QuatF) Sub(r QuatF) QuatF         { return QuatF(q.Vec4().Sub(r.Vec4())) }
func (q QuatF) Mul(r QuatF) QuatF         { return QuatF(q.Vec4().Mul(r.Vec4())) }
func (q QuatF) Div(r QuatF) QuatF         { return QuatF(q.Vec4().Div(r.Vec4())) }
func (q QuatF) Scale(s float32) QuatF     { return QuatF(q.Vec4().Scale(s)) }
func (q QuatF) DivScalar(s float32) QuatF { return QuatF(q.Vec4().DivScalar(s)) }
func (q QuatF) Dot(r QuatF) float32       { return q.Vec4().Dot(r.Vec4()) }
func (q QuatF) Cross(r QuatF) QuatF       { return QuatF(q.Vec4().Cross(r.Vec4())) }
func (q QuatF) SquareMagnitude() float32  { return q.Vec4().SquareMagnitude() }
func (q QuatF) Magnitude() float32        { return q.Vec4().Magnitude() }
func (q QuatF) Normalize() QuatF          { return QuatF(q.Vec4().Normalize()) }
func (q QuatF) Distance(r QuatF) float32  { return q.Vec4().Distance(r.Vec4()) }
func (q QuatF) Inverse() QuatF            { return QuatF(q.Vec4().Inverse()) }

// AddW adds s to W only.
func (q QuatF) AddW(s float32) QuatF { q.W += s; return q }

// SubW subtracts s from W only.
func (q QuatF) SubW(s float32) QuatF { q.W -= s; return q }

func (q QuatF) Conjugate() QuatF { return QuatF{-q.X, -q.Y, -q.Z, q.W} }

func (q *QuatF) AddAssign(r QuatF)         { *q = q.Add(r) }
func (q *QuatF) SubAssign(r QuatF)         { *q = q.Sub(r) }
func (q *QuatF) MulAssign(r QuatF)         { *q = q.Mul(r) }
func (q *QuatF) DivAssign(r QuatF)         { *q = q.Div(r) }
func (q *QuatF) ScaleAssign(s float32)     { *q = q.Scale(s) }
func (q *QuatF) DivScalarAssign(s float32) { *q = q.DivScalar(s) }
func (q *QuatF) NormalizeAssign()          { *q = q.Normalize() }
func (q *QuatF) InverseAssign()            { *q = q.Inverse() }
func (q *QuatF) ConjugateAssign()          { *q = q.Conjugate() }
func (q *QuatF) AddWAssign(s float32)      { q.W += s }
func (q *QuatF) SubWAssign(s float32)      { q.W -= s }

// Compose returns the Hamilton product q·r, the rotation r followed by q.
func (q QuatF) Compose(r QuatF) QuatF {
	return QuatF{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate rotates v by q. q must be unit length.
func (q QuatF) Rotate(v vec.Vec3f) vec.Vec3f {
	u := q.Vector()
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp interpolates from a to b along the shorter arc. t is clamped to [0, 1].
func Slerp(a, b QuatF, t float32) QuatF {
	t = mathf.Clamp01(t)
	d := a.Dot(b)
	if d < 0 {
		b = b.Inverse()
		d = -d
	}
	if d > 0.9995 {
		return a.Add(b.Sub(a).Scale(t)).Normalize()
	}
	theta := mathf.Acosf(d)
	s := mathf.Sinf(theta)
	wa := mathf.Sinf((1-t)*theta) / s
	wb := mathf.Sinf(t*theta) / s
	return a.Scale(wa).Add(b.Scale(wb))
}
