package render

import (
	"axis/color"
	"axis/mathf"
	"axis/vec"
)

// Cube returns an axis-aligned cube of the given edge length centered on
// the origin. Each face has its own color.
func Cube(size float32) Mesh {
	h := size / 2
	faces := []struct {
		n      vec.Vec3f
		u, v   vec.Vec3f
		tint color.RGBA8
	}{
		{vec.Vec3f{X: 1}, vec.Vec3f{Z: -1}, vec.Vec3f{Y: 1}, color.RGB(0xE0, 0x40, 0x40)},
		{vec.Vec3f{X: -1}, vec.Vec3f{Z: 1}, vec.Vec3f{Y: 1}, color.RGB(0x80, 0x20, 0x20)},
		{vec.Vec3f{Y: 1}, vec.Vec3f{X: 1}, vec.Vec3f{Z: -1}, color.RGB(0x40, 0xE0, 0x40)},
		{vec.Vec3f{Y: -1}, vec.Vec3f{X: 1}, vec.Vec3f{Z: 1}, color.RGB(0x20, 0x80, 0x20)},
		{vec.Vec3f{Z: 1}, vec.Vec3f{X: 1}, vec.Vec3f{Y: 1}, color.RGB(0x40, 0x40, 0xE0)},
		{vec.Vec3f{Z: -1}, vec.Vec3f{X: -1}, vec.Vec3f{Y: 1}, color.RGB(0x20, 0x20, 0x80)},
	}

	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint16, 0, 36),
	}
	for _, f := range faces {
		base := uint16(len(m.Vertices))
		c := f.n.Scale(h)
		corners := [4]vec.Vec3f{
			c.Sub(f.u.Scale(h)).Sub(f.v.Scale(h)),
			c.Add(f.u.Scale(h)).Sub(f.v.Scale(h)),
			c.Add(f.u.Scale(h)).Add(f.v.Scale(h)),
			c.Sub(f.u.Scale(h)).Add(f.v.Scale(h)),
		}
		for _, p := range corners {
			m.Vertices = append(m.Vertices, Vertex{Pos: p, Normal: f.n, Color: f.tint})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// MaxVertices is the most vertices a mesh can address with uint16 indices.
const MaxVertices = 1 << 16

// Torus returns a torus around the Y axis. segU runs around the ring and
// segV around the tube; both are clamped to at least 3, and segV is reduced
// so the torus stays within MaxVertices.
func Torus(major, minor float32, segU, segV int) Mesh {
	segU = mathf.Clamp(segU, 3, MaxVertices/3)
	segV = mathf.Clamp(segV, 3, MaxVertices/segU)

	m := Mesh{
		Vertices: make([]Vertex, 0, segU*segV),
		Indices:  make([]uint16, 0, segU*segV*6),
	}
	for i := 0; i < segU; i++ {
		u := float32(i) / float32(segU) * mathf.TauF
		cu, su := mathf.Cosf(u), mathf.Sinf(u)
		hue := float32(i) / float32(segU) * 360
		for j := 0; j < segV; j++ {
			v := float32(j) / float32(segV) * mathf.TauF
			cv, sv := mathf.Cosf(v), mathf.Sinf(v)
			r := major + minor*cv
			n := vec.Vec3f{X: cv * cu, Y: sv, Z: cv * su}
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    vec.Vec3f{X: r * cu, Y: minor * sv, Z: r * su},
				Normal: n,
				Color:  color.HSVToRGB(hue, 0.8, 1).RGBA8(),
			})
		}
	}
	for i := 0; i < segU; i++ {
		i2 := (i + 1) % segU
		for j := 0; j < segV; j++ {
			j2 := (j + 1) % segV
			a := uint16(i*segV + j)
			b := uint16(i2*segV + j)
			c := uint16(i2*segV + j2)
			d := uint16(i*segV + j2)
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

// Axes returns three thin boxes along +X (red), +Y (green) and +Z (blue).
func Axes(length float32) Mesh {
	t := length / 40
	var m Mesh
	add := func(ext vec.Vec3f, c color.RGBA8) {
		box := Cube(1)
		base := uint16(len(m.Vertices))
		for _, v := range box.Vertices {
			p := v.Pos.Add(vec.Vec3f{X: 0.5, Y: 0.5, Z: 0.5}).Mul(ext)
			m.Vertices = append(m.Vertices, Vertex{Pos: p, Normal: v.Normal, Color: c})
		}
		for _, idx := range box.Indices {
			m.Indices = append(m.Indices, base+idx)
		}
	}
	add(vec.Vec3f{X: length, Y: t, Z: t}, color.RGB(0xFF, 0x30, 0x30))
	add(vec.Vec3f{X: t, Y: length, Z: t}, color.RGB(0x30, 0xFF, 0x30))
	add(vec.Vec3f{X: t, Y: t, Z: length}, color.RGB(0x30, 0x30, 0xFF))
	return m
}
