package vec

import "axis/mathf"

// PointOnCylinder returns a point at radius from the origin for a yaw and
// pitch given in degrees:
//
//	x = r·sin(yaw)·cos(pitch)
//	y = r·cos(yaw)·sin(pitch)
//	z = r·cos(yaw)·cos(pitch)
func PointOnCylinder(radius, yaw, pitch float32) Vec3f {
	sy, cy, sp, cp := polarTerms(yaw, pitch)
	return Vec3f{
		X: radius * sy * cp,
		Y: radius * cy * sp,
		Z: radius * cy * cp,
	}
}

// PointOnSphere is PointOnCylinder with y = r·sin(yaw)·sin(pitch).
//
// This is not the textbook spherical mapping: the result has length radius
// when pitch is 0 but not in general.
func PointOnSphere(radius, yaw, pitch float32) Vec3f {
	sy, cy, sp, cp := polarTerms(yaw, pitch)
	return Vec3f{
		X: radius * sy * cp,
		Y: radius * sy * sp,
		Z: radius * cy * cp,
	}
}

func polarTerms(yaw, pitch float32) (sy, cy, sp, cp float32) {
	y, p := mathf.DToRF(yaw), mathf.DToRF(pitch)
	return mathf.Sinf(y), mathf.Cosf(y), mathf.Sinf(p), mathf.Cosf(p)
}
