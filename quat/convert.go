package quat

import (
	"axis/mathf"
	"axis/mtx"
	"axis/vec"
)

// angleAxisEpsilon is the smallest |sin(angle/2)| ToAngleAxis divides by.
const angleAxisEpsilon = 1e-8

// AxisAngle returns the rotation of angle radians about axis. The axis is
// normalized first; a zero axis yields (0, 0, 0, cos(angle/2)).
func AxisAngle(axis vec.Vec3f, angle float32) QuatF {
	n := axis.Normalize()
	half := angle * 0.5
	s := mathf.Sinf(half)
	return QuatF{
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
		W: mathf.Cosf(half),
	}
}

// FromEuler composes a rotation from per-axis angles in radians.
//
// The angle vector is normalized before it is halved, so only its direction
// matters: (0, 0, 2) and (0, 0, 0.5) give the same quaternion. Callers that
// need a conventional conversion should compose AxisAngle rotations.
func FromEuler(e vec.Vec3f) QuatF {
	h := e.Normalize().Scale(0.5)
	sx, cx := mathf.Sinf(h.X), mathf.Cosf(h.X)
	sy, cy := mathf.Sinf(h.Y), mathf.Cosf(h.Y)
	sz, cz := mathf.Sinf(h.Z), mathf.Cosf(h.Z)

	return QuatF{
		X: sx*cy*cz + cx*sy*sz,
		Y: cx*sy*cz - sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
		W: cx*cy*cz + sx*sy*sz,
	}
}

// ToAngleAxis returns the rotation axis and angle of q. When sin(angle/2) is
// within 1e-8 of zero the angle is 0 and the axis is (1, 0, 0).
//
// W is clamped to [-1, 1] so a slightly denormalized q does not yield NaN.
func (q QuatF) ToAngleAxis() (axis vec.Vec3f, angle float32) {
	half := mathf.Acosf(mathf.Clamp(q.W, -1, 1))
	s := mathf.Sinf(half)
	if mathf.Abs(s) > angleAxisEpsilon {
		return q.Vector().Scale(1 / s), half * 2
	}
	return vec.Right3[float32](), 0
}

// FromLookRotation returns the rotation that turns +Z toward forward while
// keeping +Y as close to up as possible.
//
// The basis is right = up×forward, trueUp = forward×right. A zero forward
// yields Identity. When forward is parallel to up the reference switches to
// +Z, or to +Y if forward itself lies on the Z axis.
func FromLookRotation(forward, up vec.Vec3f) QuatF {
	f := forward.Normalize()
	if f == (vec.Vec3f{}) {
		return Identity
	}

	r := up.Cross(f).Normalize()
	if r == (vec.Vec3f{}) {
		ref := vec.Forward3[float32]()
		if mathf.Abs(f.Z) > 0.9 {
			ref = vec.Up3[float32]()
		}
		r = ref.Cross(f).Normalize()
	}
	u := f.Cross(r)
	return fromBasis(r, u, f)
}

// fromBasis converts the rotation whose columns are r, u and f.
func fromBasis(r, u, f vec.Vec3f) QuatF {
	trace := r.X + u.Y + f.Z
	var q QuatF
	switch {
	case trace > 0:
		w := mathf.Sqrtf(1+trace) * 0.5
		recip := 1 / (4 * w)
		q = QuatF{
			X: (u.Z - f.Y) * recip,
			Y: (f.X - r.Z) * recip,
			Z: (r.Y - u.X) * recip,
			W: w,
		}
	case r.X >= u.Y && r.X >= f.Z:
		x := mathf.Sqrtf(1+r.X-u.Y-f.Z) * 0.5
		recip := 1 / (4 * x)
		q = QuatF{
			X: x,
			Y: (u.X + r.Y) * recip,
			Z: (f.X + r.Z) * recip,
			W: (u.Z - f.Y) * recip,
		}
	case u.Y >= f.Z:
		y := mathf.Sqrtf(1+u.Y-r.X-f.Z) * 0.5
		recip := 1 / (4 * y)
		q = QuatF{
			X: (u.X + r.Y) * recip,
			Y: y,
			Z: (f.Y + u.Z) * recip,
			W: (f.X - r.Z) * recip,
		}
	default:
		z := mathf.Sqrtf(1+f.Z-r.X-u.Y) * 0.5
		recip := 1 / (4 * z)
		q = QuatF{
			X: (f.X + r.Z) * recip,
			Y: (f.Y + u.Z) * recip,
			Z: z,
			W: (r.Y - u.X) * recip,
		}
	}
	return q
}

// ToMatrix returns the rotation block of q, normalized, in column-vector
// layout: m·v rotates v. A zero quaternion yields the identity.
//
// All 16 cells are written; row 3 and column 3 are those of the identity.
func (q QuatF) ToMatrix() mtx.Mtx4F {
	if q.Magnitude() == 0 {
		return mtx.Identity()
	}
	q = q.Normalize()
	x, y, z, w := q.X, q.Y, q.Z, q.W

	return mtx.Mtx4F{
		{1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w, 0},
		{2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w, 0},
		{2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y, 0},
		{0, 0, 0, 1},
	}
}
