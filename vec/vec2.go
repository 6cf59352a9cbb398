package vec

// Vec2 is a two component vector.
type Vec2[T Elem] struct {
	X, Y T
}

func V2[T Elem](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) DivScalar(s T) Vec2[T] { return Vec2[T]{v.X / s, v.Y / s} }

func (v Vec2[T]) Dot(o Vec2[T]) T {
	a, b := [2]T{v.X, v.Y}, [2]T{o.X, o.Y}
	return dot(a[:], b[:])
}

func (v Vec2[T]) SquareMagnitude() T { return v.Dot(v) }

func (v Vec2[T]) Magnitude() T {
	a := [2]T{v.X, v.Y}
	return magnitude(a[:])
}

// Normalize divides v by its magnitude. A zero-magnitude vector yields the
// zero vector.
func (v Vec2[T]) Normalize() Vec2[T] {
	m := v.Magnitude()
	if m == 0 {
		return Vec2[T]{}
	}
	return v.DivScalar(m)
}

func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Magnitude() }
func (v Vec2[T]) Inverse() Vec2[T]     { return Vec2[T]{-v.X, -v.Y} }
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

// Extend appends z.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v.X, v.Y, z} }

func (v *Vec2[T]) AddAssign(o Vec2[T]) { *v = v.Add(o) }
func (v *Vec2[T]) SubAssign(o Vec2[T]) { *v = v.Sub(o) }
func (v *Vec2[T]) MulAssign(o Vec2[T]) { *v = v.Mul(o) }
func (v *Vec2[T]) DivAssign(o Vec2[T]) { *v = v.Div(o) }
func (v *Vec2[T]) ScaleAssign(s T)     { *v = v.Scale(s) }
func (v *Vec2[T]) DivScalarAssign(s T) { *v = v.DivScalar(s) }
func (v *Vec2[T]) NormalizeAssign()    { *v = v.Normalize() }
func (v *Vec2[T]) InverseAssign()      { *v = v.Inverse() }
