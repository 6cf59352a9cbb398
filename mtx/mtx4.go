package mtx

import (
	"axis/mathf"
	"axis/vec"
)

// Mtx4F is a 4×4 float matrix indexed [row][col].
type Mtx4F [4][4]float32

func Identity() Mtx4F {
	var m Mtx4F
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Translate returns a matrix that offsets row vectors by (x, y, z).
func Translate(x, y, z float32) Mtx4F {
	m := Identity()
	m[3][0] = x
	m[3][1] = y
	m[3][2] = z
	return m
}

func Scale(x, y, z float32) Mtx4F {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// Rotate builds a rotation from roll, pitch and heading in degrees.
func Rotate(roll, pitch, heading float32) Mtx4F {
	roll, pitch, heading = mathf.DToRF(roll), mathf.DToRF(pitch), mathf.DToRF(heading)
	sinr, cosr := mathf.Sinf(roll), mathf.Cosf(roll)
	sinp, cosp := mathf.Sinf(pitch), mathf.Cosf(pitch)
	sinh, cosh := mathf.Sinf(heading), mathf.Cosf(heading)

	m := Identity()
	m[0][0] = cosp * cosh
	m[0][1] = cosp * sinh
	m[0][2] = -sinp

	m[1][0] = sinr*sinp*cosh - cosr*sinh
	m[1][1] = sinr*sinp*sinh + cosr*cosh
	m[1][2] = sinr * cosp

	m[2][0] = cosr*sinp*cosh + sinr*sinh
	m[2][1] = cosr*sinp*sinh - sinr*cosh
	m[2][2] = cosr * cosp
	return m
}

// Mul returns a·b.
func Mul(a, b Mtx4F) Mtx4F {
	var out Mtx4F
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a[r][0]*b[0][c] +
				a[r][1]*b[1][c] +
				a[r][2]*b[2][c] +
				a[r][3]*b[3][c]
		}
	}
	return out
}

func Transpose(m Mtx4F) Mtx4F {
	var out Mtx4F
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// MulVec4 returns the row vector v·m.
func MulVec4(v vec.Vec4f, m Mtx4F) vec.Vec4f {
	return vec.Vec4f{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// TransformPoint applies m to p with w = 1 and divides by the resulting w
// when it is neither 0 nor 1.
func TransformPoint(m Mtx4F, p vec.Vec3f) vec.Vec3f {
	r := MulVec4(p.Extend(1), m)
	if r.W != 0 && r.W != 1 {
		return r.XYZ().DivScalar(r.W)
	}
	return r.XYZ()
}

// TransformDir applies the 3×3 part of m to d.
func TransformDir(m Mtx4F, d vec.Vec3f) vec.Vec3f {
	return MulVec4(d.Extend(0), m).XYZ()
}
