package render

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"axis/color"
	"axis/mathf"
	"axis/mtx"
	"axis/vec"
)

// ErrNonFinite reports a vertex that projected to NaN or infinity, usually
// from a degenerate camera.
var ErrNonFinite = errors.New("render: non-finite vertex")

// parallelMinVertices is the smallest mesh worth splitting across workers.
const parallelMinVertices = 256

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations. A Renderer must not be
// used by several goroutines at once.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor color.RGBA8

	workers  int
	depthBuf []float32
	clip     []vec.Vec4f
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: color.RGB(0, 0, 0),
		workers:    1,
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

// SetWorkers sets how many goroutines transform vertices. n < 1 means 1.
func (r *Renderer) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	r.workers = n
}

func (r *Renderer) Workers() int { return r.workers }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Render renders a scene into the target. Meshes whose vertices do not
// project to finite coordinates are skipped and reported in the returned
// error; the rest of the scene is still drawn.
func (r *Renderer) Render(t Target, s *Scene) error {
	if r == nil || t == nil || s == nil {
		return nil
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := float32(w) / float32(h)
	viewProj := mtx.Mul(s.Camera.View(), s.Camera.Projection(aspect))

	var errs []error
	s.eachMesh(func(id int, m *Mesh) {
		if !m.Enabled {
			return
		}
		if err := r.renderMesh(t, w, h, viewProj, m, s.Light); err != nil {
			errs = append(errs, fmt.Errorf("mesh %d: %w", id, err))
		}
	})
	return errors.Join(errs...)
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj mtx.Mtx4F, m *Mesh, light Light) error {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return nil
	}
	model := m.Transform.Matrix()
	clip, err := r.transformVertices(m.Vertices, mtx.Mul(model, viewProj))
	if err != nil {
		return err
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		// Trivial clip: if any vertex is behind the eye (w<=0), drop.
		ndc0, ok0 := clipToNDC(clip[i0])
		ndc1, ok1 := clipToNDC(clip[i1])
		ndc2, ok2 := clipToNDC(clip[i2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, w, h)
		x1, y1 := ndcToScreen(ndc1, w, h)
		x2, y2 := ndcToScreen(ndc2, w, h)

		v0, v1, v2 := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]
		lit := light.Mode == LightAmbientDirectional
		var k float32 = 1
		if lit {
			n := mtx.TransformDir(model, triangleNormal(v0.Pos, v1.Pos, v2.Pos)).Normalize()
			k = lightIntensity(light, n)
		}
		base := m.Material.BaseColor
		if lit {
			base = base.Scale(k)
		}

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, x0, y0, x1, y1, base)
			r.drawLine(t, x1, y1, x2, y2, base)
			r.drawLine(t, x2, y2, x0, y0, base)
		case RenderSolidVertexColor:
			c0, c1, c2 := v0.Color, v1.Color, v2.Color
			if lit {
				c0, c1, c2 = c0.Scale(k), c1.Scale(k), c2.Scale(k)
			}
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, c0, x1, y1, ndc1.Z, c1, x2, y2, ndc2.Z, c2)
		default:
			r.fillTriangle(t, w, h, x0, y0, ndc0.Z, base, x1, y1, ndc1.Z, base, x2, y2, ndc2.Z, base)
		}
	}
	return nil
}

// transformVertices projects vs into the reusable clip buffer, splitting the
// work across the configured workers for large meshes.
func (r *Renderer) transformVertices(vs []Vertex, mvp mtx.Mtx4F) ([]vec.Vec4f, error) {
	if cap(r.clip) < len(vs) {
		r.clip = make([]vec.Vec4f, len(vs))
	}
	out := r.clip[:len(vs)]

	if r.workers <= 1 || len(vs) < parallelMinVertices {
		return out, project(out, vs, mvp)
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	chunk := (len(vs) + r.workers - 1) / r.workers
	for lo := 0; lo < len(vs); lo += chunk {
		hi := min(lo+chunk, len(vs))
		g.Go(func() error {
			return project(out[lo:hi], vs[lo:hi], mvp)
		})
	}
	return out, g.Wait()
}

func project(dst []vec.Vec4f, vs []Vertex, mvp mtx.Mtx4F) error {
	for i, v := range vs {
		p := mtx.MulVec4(v.Pos.Extend(1), mvp)
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) || !finite(p.W) {
			return ErrNonFinite
		}
		dst[i] = p
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p vec.Vec4f) (ndcPoint, bool) {
	if p.W <= 0 {
		return ndcPoint{}, false
	}
	n := p.XYZ().Scale(1 / p.W)
	return ndcPoint{X: n.X, Y: n.Y, Z: n.Z}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c vec.Vec3f) vec.Vec3f {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func lightIntensity(l Light, n vec.Vec3f) float32 {
	amb := mathf.Clamp01(l.Ambient)
	dir := mathf.Clamp01(l.DirAmount)
	ld := l.Dir.Normalize()
	if ld == (vec.Vec3f{}) {
		return amb
	}
	d := n.Dot(ld.Inverse())
	if d < 0 {
		d = 0
	}
	return mathf.Clamp01(amb + d*dir)
}

func (r *Renderer) depthTest(w int, x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := mathf.Clamp01(z*0.5 + 0.5)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c color.RGBA8) {
	dx := mathf.Abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -mathf.Abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle rasterizes both windings and interpolates color and depth
// barycentrically.
func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 color.RGBA8, x1, y1 int, z1 float32, c1 color.RGBA8, x2, y2 int, z2 float32, c2 color.RGBA8) {
	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if area < 0 {
		x1, y1, z1, c1, x2, y2, z2, c2 = x2, y2, z2, c2, x1, y1, z1, c1
		area = -area
	}

	minX, maxX := mathf.Min3(x0, x1, x2), mathf.Max3(x0, x1, x2)
	minY, maxY := mathf.Min3(y0, y1, y2), mathf.Max3(y0, y1, y2)
	minX, maxX = mathf.Max2(minX, 0), mathf.Min2(maxX, w-1)
	minY, maxY = mathf.Max2(minY, 0), mathf.Min2(maxY, h-1)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1.0 / float32(area)
	flat := c0 == c1 && c1 == c2

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y)
			w1 := edgeFn(x2, y2, x0, y0, x, y)
			w2 := edgeFn(x0, y0, x1, y1, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0) * invArea
			a1 := float32(w1) * invArea
			a2 := float32(w2) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z) {
				continue
			}
			if flat {
				t.SetPixel(x, y, c0)
				continue
			}
			rr := uint8(mathf.Clamp(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(mathf.Clamp(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(mathf.Clamp(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, color.RGBA8{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}
