package mathf

import "math"

// Table is a Provider that looks sine and cosine up in a precomputed
// full-turn table indexed by binary angle. Acos and Sqrt use the
// standard library.
type Table struct {
	sin   []float32
	shift uint
}

// NewTable builds a table with 1<<bits entries per turn. bits is clamped to
// [4, 16].
func NewTable(bits uint) *Table {
	bits = uint(Clamp(int(bits), 4, 16))
	n := 1 << bits
	t := &Table{sin: make([]float32, n), shift: 16 - bits}
	for i := range t.sin {
		t.sin[i] = float32(math.Sin(Tau * float64(i) / float64(n)))
	}
	return t
}

// Size returns the number of entries per turn.
func (t *Table) Size() int { return len(t.sin) }

func (t *Table) index(rad float32) int {
	s := int64(math.Round(float64(rad) * Rad2S))
	return int(uint16(s) >> t.shift)
}

func (t *Table) Sin(x float32) float32 { return t.sin[t.index(x)] }

func (t *Table) Cos(x float32) float32 { return t.sin[t.index(x+HPiF)] }

func (t *Table) Acos(x float32) float32 { return Std{}.Acos(x) }

func (t *Table) Sqrt(x float32) float32 { return Std{}.Sqrt(x) }
