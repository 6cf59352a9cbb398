// Package quat implements QuatF, a float32 quaternion, and its conversions
// to and from axis-angle, Euler angles, look rotations and 4×4 matrices.
//
// QuatF shares its layout with vec.Vec4f. The componentwise algebra (Add,
// Scale, Dot, Normalize and friends) is the Vec4f algebra; nothing here
// normalizes implicitly. Angles are radians.
package quat
