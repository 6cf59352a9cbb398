package vec

import "testing"

var sinkF float32
var sinkS int16

func BenchmarkNormalize(b *testing.B) {
	b.Run("Vec3f", func(b *testing.B) {
		v := Vec3f{1, 2, 3}
		for i := 0; i < b.N; i++ {
			sinkF += v.Normalize().X
		}
	})
	b.Run("Vec3s", func(b *testing.B) {
		v := Vec3s{100, 200, 300}
		for i := 0; i < b.N; i++ {
			sinkS += v.Normalize().X
		}
	})
}

func BenchmarkDot(b *testing.B) {
	x, y := Vec4f{1, 2, 3, 4}, Vec4f{4, 3, 2, 1}
	for i := 0; i < b.N; i++ {
		sinkF += x.Dot(y)
	}
}
