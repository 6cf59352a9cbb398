package mtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axis/vec"
)

func assertVec3InDelta(t *testing.T, want, got vec.Vec3f, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestMulIdentity(t *testing.T) {
	a := Identity()
	b := Translate(1, 2, 3)
	require.Equal(t, b, Mul(a, b))
	require.Equal(t, b, Mul(b, a))
}

func TestIdentityCells(t *testing.T) {
	m := Identity()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			assert.Equal(t, want, m[r][c])
		}
	}
	assert.Equal(t, Mtx2F{{1, 0}, {0, 1}}, Identity2())
	assert.Equal(t, float32(1), Identity3().Det())
}

func TestTranslateScaleOrder(t *testing.T) {
	// scale first, then translate
	m := Mul(Scale(2, 2, 2), Translate(1, 0, 0))
	got := TransformPoint(m, vec.Vec3f{X: 1, Y: 1, Z: 1})
	assert.Equal(t, vec.Vec3f{X: 3, Y: 2, Z: 2}, got)

	// directions ignore translation
	assert.Equal(t, vec.Vec3f{X: 2, Y: 2, Z: 2}, TransformDir(m, vec.Vec3f{X: 1, Y: 1, Z: 1}))
}

func TestRotateHeading(t *testing.T) {
	m := Rotate(0, 0, 90)
	assertVec3InDelta(t, vec.Vec3f{X: 0, Y: 1, Z: 0}, TransformDir(m, vec.Vec3f{X: 1, Y: 0, Z: 0}), 1e-6)

	m = Rotate(90, 0, 0)
	assertVec3InDelta(t, vec.Vec3f{X: 0, Y: 0, Z: 1}, TransformDir(m, vec.Vec3f{X: 0, Y: 1, Z: 0}), 1e-6)

	r := Upper3(Rotate(30, 45, 60))
	assert.InDelta(t, 1, r.Det(), 1e-5)
}

func TestTranspose(t *testing.T) {
	m := Translate(4, 5, 6)
	tr := Transpose(m)
	assert.Equal(t, float32(4), tr[0][3])
	assert.Equal(t, m, Transpose(tr))
}

func TestMulVec4(t *testing.T) {
	m := Translate(1, 2, 3)
	got := MulVec4(vec.Vec4f{X: 0, Y: 0, Z: 0, W: 1}, m)
	assert.Equal(t, vec.Vec4f{X: 1, Y: 2, Z: 3, W: 1}, got)
}

func TestLookAtNotIdentity(t *testing.T) {
	m := LookAt(vec.Vec3f{X: 0, Y: 0, Z: 3}, vec.Vec3f{}, vec.Vec3f{X: 0, Y: 1, Z: 0})
	require.NotEqual(t, Identity(), m)
	// the eye sits at the view-space origin
	assertVec3InDelta(t, vec.Vec3f{}, TransformPoint(m, vec.Vec3f{X: 0, Y: 0, Z: 3}), 1e-6)
	// the target is straight ahead on -Z
	assertVec3InDelta(t, vec.Vec3f{X: 0, Y: 0, Z: -3}, TransformPoint(m, vec.Vec3f{}), 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := Perspective(1.0, 1.5, 0.1, 100)
	near := MulVec4(vec.Vec4f{X: 0, Y: 0, Z: -0.1, W: 1}, p)
	far := MulVec4(vec.Vec4f{X: 0, Y: 0, Z: -100, W: 1}, p)
	assert.InDelta(t, -1, near.Z/near.W, 1e-4)
	assert.InDelta(t, 1, far.Z/far.W, 1e-4)

	assert.Equal(t, Perspective(1, 1, 1, 10), Perspective(1, 0, 1, 10))
}

func TestOrtho(t *testing.T) {
	o := Ortho(-2, 2, -1, 1, 0, 10)
	assertVec3InDelta(t, vec.Vec3f{X: 1, Y: 1, Z: -1}, TransformPoint(o, vec.Vec3f{X: 2, Y: 1, Z: 0}), 1e-6)
	assertVec3InDelta(t, vec.Vec3f{X: -1, Y: -1, Z: 1}, TransformPoint(o, vec.Vec3f{X: -2, Y: -1, Z: -10}), 1e-6)
}

func TestFixedRoundTrip(t *testing.T) {
	m := Mul(Rotate(10, 20, 30), Translate(-3.5, 100.25, 7))
	x := ToFixed(m)
	back := x.Float()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, m[r][c], back[r][c], 1.0/0x10000)
		}
	}
}

func TestFixedLayout(t *testing.T) {
	x := ToFixed(Translate(-1.5, 2, 0))
	assert.Equal(t, int16(1), x.I[0])
	assert.Equal(t, uint16(0), x.F[0])
	// -1.5 is 0xFFFE8000 in s15.16
	assert.Equal(t, int16(-2), x.I[12])
	assert.Equal(t, uint16(0x8000), x.F[12])
	assert.Equal(t, int16(2), x.I[13])
}
