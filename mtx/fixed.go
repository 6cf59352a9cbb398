package mtx

// Mtx44 is a 4×4 matrix in signed 15.16 fixed point, split into integer
// halves followed by fraction halves as a display list expects it.
type Mtx44 struct {
	I [16]int16
	F [16]uint16
}

func toQ1616(v float32) int32 { return int32(v * 0x10000) }

// ToFixed packs m row by row.
func ToFixed(m Mtx4F) Mtx44 {
	var out Mtx44
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			q := toQ1616(m[r][c])
			out.I[r*4+c] = int16(q >> 16)
			out.F[r*4+c] = uint16(q)
		}
	}
	return out
}

// Float unpacks the fixed point matrix.
func (x Mtx44) Float() Mtx4F {
	var m Mtx4F
	for i := 0; i < 16; i++ {
		q := int32(uint32(uint16(x.I[i]))<<16 | uint32(x.F[i]))
		m[i/4][i%4] = float32(q) / 0x10000
	}
	return m
}
