// Package vec implements fixed-size 2, 3 and 4 component vectors over the
// int16, int32 and float32 element domains.
//
// Every operation exists once as a generic method; the twelve concrete
// types are aliases (Vec3f = Vec3[float32], Vec3i = Vec3[int32],
// Vec3s = Vec3[int16] and so on).
//
// Value methods return new vectors and never modify their operands. The
// *Assign methods modify the receiver in place.
//
// Integer domains:
//
//   - Dot and SquareMagnitude accumulate in 64 bits and narrow once, so an
//     int16 result wraps only when the true value does not fit.
//   - Magnitude is the square root of the wide sum truncated toward zero.
//   - Normalize divides by that truncated magnitude, so integer unit vectors
//     are coarse approximations.
//   - Division by zero panics like any Go integer division.
package vec
