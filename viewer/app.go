package viewer

import (
	"errors"
	"fmt"
	imgcolor "image/color"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"tinygo.org/x/tinyfont"

	"axis/color"
	"axis/hal"
	"axis/internal/hudfont"
	"axis/mathf"
	"axis/quat"
	"axis/render"
	"axis/vec"
)

// ErrQuit is returned by Step when the user asks to leave.
var ErrQuit = errors.New("viewer: quit")

// resetSteps is how many steps the orientation takes to return to rest.
const resetSteps = 30

var (
	hudFG = imgcolor.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	hudBG = imgcolor.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}
)

// App spins a mesh in front of an orbit camera and draws an orientation
// readout on top.
type App struct {
	cfg Config
	log *zap.Logger

	fb     hal.Framebuffer
	kbd    hal.Keyboard
	ticks  <-chan uint64
	target *render.RGB565Target
	disp   *fbDisplay
	font   *hudfont.Font

	r      *render.Renderer
	scene  *render.Scene
	mesh   int
	orbit  render.OrbitController
	axis   vec.Vec3f
	rest   quat.QuatF
	orient quat.QuatF

	hue     float32
	clock   float32
	frame   uint64
	paused  bool
	hud     bool
	reset   int
	resetAt quat.QuatF
}

// New builds the scene described by cfg on top of h.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("viewer: RGB565 framebuffer required: %w", hal.ErrNotImplemented)
	}

	a := &App{
		cfg: cfg,
		log: h.Logger(),
		fb:  fb,
		target: &render.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		disp: newFBDisplay(fb),
		font: hudfont.New(hudScale(fb.Height())),
		hue:  cfg.Background.Hue,
		hud:  cfg.HUD,
	}
	if in := h.Input(); in != nil {
		a.kbd = in.Keyboard()
	}
	if cfg.FixedStep <= 0 && h.Time() != nil {
		a.ticks = h.Time().Ticks()
	}

	mode, _ := render.ParseRenderMode(cfg.Render.Mode)
	a.r = render.NewRenderer(fb.Width(), fb.Height(), cfg.Render.Depth)
	a.r.SetRenderMode(mode)
	a.r.SetWorkers(cfg.Render.Workers)

	a.scene = render.CreateScene(1)
	a.scene.Light = lightFrom(cfg.Light)
	a.mesh = a.scene.AddMesh(buildMesh(cfg.Mesh))

	a.orbit = render.OrbitController{
		Yaw:       cfg.Orbit.Yaw,
		Pitch:     cfg.Orbit.Pitch,
		Radius:    cfg.Orbit.Radius,
		MinRadius: 1,
		MaxRadius: 20,
	}

	a.axis = vec.Vec3f{X: cfg.Spin.Axis[0], Y: cfg.Spin.Axis[1], Z: cfg.Spin.Axis[2]}
	if a.axis.Normalize() == (vec.Vec3f{}) {
		a.axis = vec.Up3[float32]()
	}
	a.rest = restPose(cfg.Pose)
	a.orient = a.rest

	a.log.Info("viewer ready",
		zap.String("mesh", cfg.Mesh.Kind),
		zap.Stringer("mode", mode),
		zap.Int("workers", a.r.Workers()),
		zap.Int("width", fb.Width()),
		zap.Int("height", fb.Height()),
	)
	return a, nil
}

// Step advances the animation by one frame and redraws.
func (a *App) Step() error {
	if err := a.handleInput(); err != nil {
		return err
	}
	dt := a.elapsed()
	a.clock += dt

	a.advanceOrientation(dt)

	a.hue = color.CycleHue(a.hue, a.cfg.Background.CycleSpeed*dt)
	bg := color.HSVToRGB(a.hue, a.cfg.Background.Saturation, a.cfg.Background.Value)
	a.r.ClearColor = bg.RGBA8()

	if a.cfg.Light.Pulse {
		a.scene.Light.DirAmount = mathf.Clamp01(a.cfg.Light.Directional) * color.LerpCosine(a.clock, 0.4)
	}

	tr := render.NewTransform()
	tr.Rotation = a.orient
	a.scene.UpdateMeshTransform(a.mesh, tr)
	a.orbit.Apply(&a.scene.Camera)

	if err := a.r.Render(a.target, a.scene); err != nil {
		a.log.Warn("render", zap.Error(err), zap.Uint64("frame", a.frame))
	}
	if a.hud {
		a.drawHUD()
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	a.frame++
	if n := uint64(a.cfg.DigestEvery); n > 0 && a.frame%n == 0 {
		a.log.Info("frame digest",
			zap.Uint64("frame", a.frame),
			zap.String("xxh64", fmt.Sprintf("%016x", a.Digest())),
		)
	}
	return nil
}

// Digest returns the xxhash64 of the current framebuffer contents.
func (a *App) Digest() uint64 { return xxhash.Sum64(a.fb.Buffer()) }

func (a *App) Frame() uint64           { return a.frame }
func (a *App) Orientation() quat.QuatF { return a.orient }

func (a *App) elapsed() float32 {
	if a.cfg.FixedStep > 0 {
		return a.cfg.FixedStep
	}
	var ms int
	for {
		select {
		case <-a.ticks:
			ms++
		default:
			return float32(ms) / 1000
		}
	}
}

func (a *App) advanceOrientation(dt float32) {
	if a.reset > 0 {
		a.reset--
		t := 1 - float32(a.reset)/resetSteps
		a.orient = quat.Slerp(a.resetAt, a.rest, t)
		return
	}
	if a.paused || dt == 0 {
		return
	}
	step := quat.AxisAngle(a.axis, mathf.DToRF(a.cfg.Spin.Speed*dt))
	a.orient = step.Compose(a.orient).Normalize()
}

func (a *App) handleInput() error {
	if a.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-a.kbd.Events():
			if !ev.Press {
				continue
			}
			if err := a.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) error {
	step := a.cfg.Orbit.Step
	switch ev.Code {
	case hal.KeyEscape:
		return ErrQuit
	case hal.KeyLeft:
		a.orbit.Rotate(-step, 0)
	case hal.KeyRight:
		a.orbit.Rotate(step, 0)
	case hal.KeyUp:
		a.orbit.Rotate(0, step)
	case hal.KeyDown:
		a.orbit.Rotate(0, -step)
	case hal.KeyPageUp:
		a.orbit.Zoom(-a.cfg.Orbit.ZoomStep)
	case hal.KeyPageDown:
		a.orbit.Zoom(a.cfg.Orbit.ZoomStep)
	case hal.KeySpace:
		a.paused = !a.paused
	case hal.KeyF1:
		a.hud = !a.hud
	}

	switch ev.Rune {
	case '+', '=':
		a.orbit.Zoom(-a.cfg.Orbit.ZoomStep)
	case '-':
		a.orbit.Zoom(a.cfg.Orbit.ZoomStep)
	case 'm', 'M':
		a.r.SetRenderMode((a.r.Mode + 1) % 3)
		a.log.Debug("render mode", zap.Stringer("mode", a.r.Mode))
	case 'r', 'R':
		a.resetAt = a.orient
		a.reset = resetSteps
	case 'q', 'Q':
		return ErrQuit
	}
	return nil
}

func (a *App) drawHUD() {
	axis, angle := a.orient.ToAngleAxis()
	lines := [...]string{
		fmt.Sprintf("AXIS %+.2f %+.2f %+.2f", axis.X, axis.Y, axis.Z),
		fmt.Sprintf("ANGLE %.1f", mathf.RToDF(angle)),
		fmt.Sprintf("YAW %.0f PITCH %.0f R %.2f", a.orbit.Yaw, a.orbit.Pitch, a.orbit.Radius),
		fmt.Sprintf("MODE %s HUE %.0f", a.r.Mode, a.hue),
	}

	lineH := int16(a.font.GetYAdvance())
	var width uint32
	for _, s := range lines {
		_, w := tinyfont.LineWidth(a.font, s)
		width = max(width, w)
	}
	pad := a.font.Scale * 2
	a.disp.fillRect(0, 0, int16(width)+2*pad, lineH*int16(len(lines))+2*pad, hudBG)

	y := pad + lineH - a.font.Scale
	for _, s := range lines {
		tinyfont.WriteLine(a.disp, a.font, pad, y, s, hudFG)
		y += lineH
	}
}

func hudScale(height int) int16 {
	return int16(mathf.Max2(height/160, 1))
}

func restPose(p PoseConfig) quat.QuatF {
	q := quat.Identity
	facing := vec.Vec3f{X: p.Facing[0], Y: p.Facing[1], Z: p.Facing[2]}
	if facing != (vec.Vec3f{}) {
		q = quat.FromLookRotation(facing, vec.Up3[float32]())
	}
	axes := [3]vec.Vec3f{vec.Right3[float32](), vec.Up3[float32](), vec.Forward3[float32]()}
	for i, deg := range p.Tilt {
		if deg == 0 {
			continue
		}
		q = quat.AxisAngle(axes[i], mathf.DToRF(deg)).Compose(q)
	}
	return q.Normalize()
}

func lightFrom(c LightConfig) render.Light {
	l := render.Light{Mode: render.LightOff}
	if !c.Enabled {
		return l
	}
	l.Mode = render.LightAmbientDirectional
	l.Ambient = c.Ambient
	l.DirAmount = c.Directional
	l.Dir = vec.Vec3f{X: c.Dir[0], Y: c.Dir[1], Z: c.Dir[2]}.Normalize()
	return l
}

func buildMesh(c MeshConfig) render.Mesh {
	switch c.Kind {
	case "torus":
		m := render.Torus(c.Major, c.Minor, c.Segments[0], c.Segments[1])
		m.Material.BaseColor = color.RGB(0xD0, 0xA0, 0x40)
		return m
	case "axes":
		return render.Axes(c.Size)
	default:
		return render.Cube(c.Size)
	}
}
