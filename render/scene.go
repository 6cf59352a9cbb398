package render

import (
	"axis/color"
	"axis/mtx"
	"axis/quat"
	"axis/vec"
)

// Material is a minimal surface description.
type Material struct {
	BaseColor color.RGBA8
	Opacity   uint8 // 0..255. 255 means opaque.
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   float32   // 0..1
	Dir       vec.Vec3f // direction *towards* the scene
	DirAmount float32   // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position vec.Vec3f
	Target   vec.Vec3f
	Up       vec.Vec3f

	// Perspective.
	FOVYRad float32

	// Orthographic (half-height).
	OrthoSize float32

	Near float32
	Far  float32
}

// View returns the camera view matrix.
func (c Camera) View() mtx.Mtx4F {
	up := c.Up
	if up == (vec.Vec3f{}) {
		up = vec.Up3[float32]()
	}
	return mtx.LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect float32) mtx.Mtx4F {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return mtx.Ortho(-right, right, -size, size, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1
		}
		return mtx.Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Transform places an object: scale, then rotate, then translate.
type Transform struct {
	Position vec.Vec3f
	Rotation quat.QuatF
	Scale    vec.Vec3f
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Rotation: quat.Identity, Scale: vec.Vec3f{X: 1, Y: 1, Z: 1}}
}

// Matrix returns the row-vector model matrix. A zero Scale counts as 1 and a
// zero Rotation as the identity.
func (t Transform) Matrix() mtx.Mtx4F {
	s := t.Scale
	if s == (vec.Vec3f{}) {
		s = vec.Vec3f{X: 1, Y: 1, Z: 1}
	}
	rot := mtx.Transpose(t.Rotation.ToMatrix())
	m := mtx.Mul(mtx.Scale(s.X, s.Y, s.Z), rot)
	return mtx.Mul(m, mtx.Translate(t.Position.X, t.Position.Y, t.Position.Z))
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    vec.Vec3f
	Normal vec.Vec3f
	Color  color.RGBA8
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Transform
	Material  Material
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  vec.Vec3f{X: 0, Y: 0, Z: 3},
			Up:        vec.Up3[float32](),
			FOVYRad:   1.0,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       vec.Vec3f{X: -1, Y: -1, Z: -1}.Normalize(),
			DirAmount: 0.75,
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Transform{}) {
			m.Transform = NewTransform()
		}
		if m.Material.Opacity == 0 {
			m.Material.Opacity = 0xFF
		}
		if m.Material.BaseColor == (color.RGBA8{}) {
			m.Material.BaseColor = color.RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Enabled = enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, t Transform) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return
	}
	s.meshes[id].Transform = t
}

// MeshTransform returns the transform of a mesh by id.
func (s *Scene) MeshTransform(id int) (Transform, bool) {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return Transform{}, false
	}
	return s.meshes[id].Transform, true
}

func (s *Scene) eachMesh(fn func(id int, m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(i, &s.meshes[i])
	}
}
