package vec

// Vec3 is a three component vector.
type Vec3[T Elem] struct {
	X, Y, Z T
}

func V3[T Elem](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { return Vec3[T]{v.X / s, v.Y / s, v.Z / s} }

func (v Vec3[T]) Dot(o Vec3[T]) T {
	a, b := [3]T{v.X, v.Y, v.Z}, [3]T{o.X, o.Y, o.Z}
	return dot(a[:], b[:])
}

func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3[T]) SquareMagnitude() T { return v.Dot(v) }

func (v Vec3[T]) Magnitude() T {
	a := [3]T{v.X, v.Y, v.Z}
	return magnitude(a[:])
}

// Normalize divides v by its magnitude. A zero-magnitude vector yields the
// zero vector.
func (v Vec3[T]) Normalize() Vec3[T] {
	m := v.Magnitude()
	if m == 0 {
		return Vec3[T]{}
	}
	return v.DivScalar(m)
}

func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Magnitude() }

// Inverse negates every component.
func (v Vec3[T]) Inverse() Vec3[T] { return Vec3[T]{-v.X, -v.Y, -v.Z} }

func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// XY drops Z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// Extend appends w.
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }

func (v *Vec3[T]) AddAssign(o Vec3[T])   { *v = v.Add(o) }
func (v *Vec3[T]) SubAssign(o Vec3[T])   { *v = v.Sub(o) }
func (v *Vec3[T]) MulAssign(o Vec3[T])   { *v = v.Mul(o) }
func (v *Vec3[T]) DivAssign(o Vec3[T])   { *v = v.Div(o) }
func (v *Vec3[T]) ScaleAssign(s T)       { *v = v.Scale(s) }
func (v *Vec3[T]) DivScalarAssign(s T)   { *v = v.DivScalar(s) }
func (v *Vec3[T]) CrossAssign(o Vec3[T]) { *v = v.Cross(o) }
func (v *Vec3[T]) NormalizeAssign()      { *v = v.Normalize() }
func (v *Vec3[T]) InverseAssign()        { *v = v.Inverse() }
