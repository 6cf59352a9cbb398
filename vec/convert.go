package vec

// Convert2 casts each component of v to U. Float to integer truncates toward
// zero; int32 to int16 keeps the low 16 bits.
func Convert2[U, T Elem](v Vec2[T]) Vec2[U] { return Vec2[U]{U(v.X), U(v.Y)} }

// Convert3 casts each component of v to U with the rules of Convert2.
func Convert3[U, T Elem](v Vec3[T]) Vec3[U] { return Vec3[U]{U(v.X), U(v.Y), U(v.Z)} }

// Convert4 casts each component of v to U with the rules of Convert2.
func Convert4[U, T Elem](v Vec4[T]) Vec4[U] { return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)} }

// Assign2 stores the converted components of src into dst.
func Assign2[U, T Elem](dst *Vec2[U], src Vec2[T]) { *dst = Convert2[U](src) }

func Assign3[U, T Elem](dst *Vec3[U], src Vec3[T]) { *dst = Convert3[U](src) }

func Assign4[U, T Elem](dst *Vec4[U], src Vec4[T]) { *dst = Convert4[U](src) }
