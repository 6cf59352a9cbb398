package render

import (
	"axis/mathf"
	"axis/quat"
	"axis/vec"
)

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// Yaw and Pitch are degrees. Positive pitch raises the camera above the
// target; yaw turns it around +Y starting from +Z.
type OrbitController struct {
	Target vec.Vec3f
	Yaw    float32
	Pitch  float32
	Radius float32

	MinRadius float32
	MaxRadius float32
	MaxPitch  float32 // 0 means 89
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	r = c.clampRadius(r)

	yaw := quat.AxisAngle(vec.Up3[float32](), mathf.DToRF(c.Yaw))
	pitch := quat.AxisAngle(vec.Right3[float32](), -mathf.DToRF(c.Pitch))
	cam.Position = c.Target.Add(yaw.Compose(pitch).Rotate(vec.Vec3f{Z: r}))
	cam.Target = c.Target
	if cam.Up == (vec.Vec3f{}) {
		cam.Up = vec.Up3[float32]()
	}
}

// Rotate turns the orbit by degrees. Yaw wraps to [0, 360); pitch is clamped.
func (c *OrbitController) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw = mathf.ModF(c.Yaw+deltaYaw, 360)
	if c.Yaw < 0 {
		c.Yaw += 360
	}
	lim := c.MaxPitch
	if lim == 0 {
		lim = 89
	}
	c.Pitch = mathf.Clamp(c.Pitch+deltaPitch, -lim, lim)
}

func (c *OrbitController) Zoom(delta float32) {
	c.Radius = c.clampRadius(c.Radius + delta)
}

func (c *OrbitController) clampRadius(r float32) float32 {
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	return r
}
