package vec

// Unit directions. Forward is +Z and Backward is -Z.

func Zero2[T Elem]() Vec2[T]  { return Vec2[T]{} }
func Right2[T Elem]() Vec2[T] { return Vec2[T]{1, 0} }
func Left2[T Elem]() Vec2[T]  { return Vec2[T]{-1, 0} }
func Up2[T Elem]() Vec2[T]    { return Vec2[T]{0, 1} }
func Down2[T Elem]() Vec2[T]  { return Vec2[T]{0, -1} }

func Zero3[T Elem]() Vec3[T]     { return Vec3[T]{} }
func Right3[T Elem]() Vec3[T]    { return Vec3[T]{1, 0, 0} }
func Left3[T Elem]() Vec3[T]     { return Vec3[T]{-1, 0, 0} }
func Up3[T Elem]() Vec3[T]       { return Vec3[T]{0, 1, 0} }
func Down3[T Elem]() Vec3[T]     { return Vec3[T]{0, -1, 0} }
func Forward3[T Elem]() Vec3[T]  { return Vec3[T]{0, 0, 1} }
func Backward3[T Elem]() Vec3[T] { return Vec3[T]{0, 0, -1} }

func Zero4[T Elem]() Vec4[T]     { return Vec4[T]{} }
func Right4[T Elem]() Vec4[T]    { return Vec4[T]{1, 0, 0, 0} }
func Left4[T Elem]() Vec4[T]     { return Vec4[T]{-1, 0, 0, 0} }
func Up4[T Elem]() Vec4[T]       { return Vec4[T]{0, 1, 0, 0} }
func Down4[T Elem]() Vec4[T]     { return Vec4[T]{0, -1, 0, 0} }
func Forward4[T Elem]() Vec4[T]  { return Vec4[T]{0, 0, 1, 0} }
func Backward4[T Elem]() Vec4[T] { return Vec4[T]{0, 0, -1, 0} }

// Identity4 is (0, 0, 0, 1), the identity rotation when read as a quaternion.
func Identity4[T Elem]() Vec4[T] { return Vec4[T]{0, 0, 0, 1} }

// Ndentity4 is (0, 0, 0, -1).
func Ndentity4[T Elem]() Vec4[T] { return Vec4[T]{0, 0, 0, -1} }
