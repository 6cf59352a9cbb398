package vec

// Vec4 is a four component vector. Its layout matches quat.QuatF, so the two
// convert directly.
type Vec4[T Elem] struct {
	X, Y, Z, W T
}

func V4[T Elem](x, y, z, w T) Vec4[T] { return Vec4[T]{X: x, Y: y, Z: z, W: w} }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T]     { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[T]) DivScalar(s T) Vec4[T] { return Vec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

func (v Vec4[T]) Dot(o Vec4[T]) T {
	a, b := [4]T{v.X, v.Y, v.Z, v.W}, [4]T{o.X, o.Y, o.Z, o.W}
	return dot(a[:], b[:])
}

// Cross is the cross product of the XYZ parts. W of the result is 0.
func (v Vec4[T]) Cross(o Vec4[T]) Vec4[T] {
	return v.XYZ().Cross(o.XYZ()).Extend(0)
}

func (v Vec4[T]) SquareMagnitude() T { return v.Dot(v) }

func (v Vec4[T]) Magnitude() T {
	a := [4]T{v.X, v.Y, v.Z, v.W}
	return magnitude(a[:])
}

// Normalize divides v by its magnitude. A zero-magnitude vector yields the
// zero vector.
func (v Vec4[T]) Normalize() Vec4[T] {
	m := v.Magnitude()
	if m == 0 {
		return Vec4[T]{}
	}
	return v.DivScalar(m)
}

func (v Vec4[T]) Distance(o Vec4[T]) T { return v.Sub(o).Magnitude() }
func (v Vec4[T]) Inverse() Vec4[T]     { return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W} }
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// XYZ drops W.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }

func (v *Vec4[T]) AddAssign(o Vec4[T])   { *v = v.Add(o) }
func (v *Vec4[T]) SubAssign(o Vec4[T])   { *v = v.Sub(o) }
func (v *Vec4[T]) MulAssign(o Vec4[T])   { *v = v.Mul(o) }
func (v *Vec4[T]) DivAssign(o Vec4[T])   { *v = v.Div(o) }
func (v *Vec4[T]) ScaleAssign(s T)       { *v = v.Scale(s) }
func (v *Vec4[T]) DivScalarAssign(s T)   { *v = v.DivScalar(s) }
func (v *Vec4[T]) CrossAssign(o Vec4[T]) { *v = v.Cross(o) }
func (v *Vec4[T]) NormalizeAssign()      { *v = v.Normalize() }
func (v *Vec4[T]) InverseAssign()        { *v = v.Inverse() }
