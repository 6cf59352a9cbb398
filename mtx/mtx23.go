package mtx

// Mtx2F is a 2×2 float matrix indexed [row][col].
type Mtx2F [2][2]float32

// Mtx3F is a 3×3 float matrix indexed [row][col].
type Mtx3F [3][3]float32

func Identity2() Mtx2F { return Mtx2F{{1, 0}, {0, 1}} }
func Identity3() Mtx3F { return Mtx3F{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

// Upper3 returns the rotation and scale block of m.
func Upper3(m Mtx4F) Mtx3F {
	var out Mtx3F
	for r := 0; r < 3; r++ {
		copy(out[r][:], m[r][:3])
	}
	return out
}

// Det returns the determinant of m.
func (m Mtx3F) Det() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
