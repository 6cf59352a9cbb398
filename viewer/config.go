package viewer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"axis/render"
)

// Config describes one viewer scene.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Mesh   MeshConfig   `yaml:"mesh"`
	Spin   SpinConfig   `yaml:"spin"`
	Pose   PoseConfig   `yaml:"pose"`
	Orbit  OrbitConfig  `yaml:"orbit"`
	Light  LightConfig  `yaml:"light"`
	Render RenderConfig `yaml:"render"`

	Background BackgroundConfig `yaml:"background"`

	HUD bool `yaml:"hud"`
	// DigestEvery logs a framebuffer digest every N frames. 0 disables it.
	DigestEvery int `yaml:"digest_every"`
	// FixedStep advances the animation by this many seconds per step
	// instead of host time. Used for reproducible headless runs.
	FixedStep float32 `yaml:"fixed_step"`
}

type MeshConfig struct {
	Kind     string  `yaml:"kind"` // cube, torus or axes
	Size     float32 `yaml:"size"`
	Major    float32 `yaml:"major"`
	Minor    float32 `yaml:"minor"`
	Segments [2]int  `yaml:"segments"`
}

type SpinConfig struct {
	Axis  [3]float32 `yaml:"axis"`
	Speed float32    `yaml:"speed"` // degrees per second
}

// PoseConfig sets the resting orientation: the mesh first faces Facing
// (when non-zero) and is then tilted about X, Y and Z in that order, in
// degrees.
type PoseConfig struct {
	Facing [3]float32 `yaml:"facing"`
	Tilt   [3]float32 `yaml:"tilt"`
}

type OrbitConfig struct {
	Yaw      float32 `yaml:"yaw"`
	Pitch    float32 `yaml:"pitch"`
	Radius   float32 `yaml:"radius"`
	Step     float32 `yaml:"step"` // degrees per key press
	ZoomStep float32 `yaml:"zoom_step"`
}

type LightConfig struct {
	Enabled     bool       `yaml:"enabled"`
	Ambient     float32    `yaml:"ambient"`
	Directional float32    `yaml:"directional"`
	Dir         [3]float32 `yaml:"dir"`
	Pulse       bool       `yaml:"pulse"`
}

type RenderConfig struct {
	Mode    string `yaml:"mode"`
	Depth   bool   `yaml:"depth"`
	Workers int    `yaml:"workers"`
}

// BackgroundConfig is the clear color in HSV. CycleSpeed advances the hue in
// degrees per second.
type BackgroundConfig struct {
	Hue        float32 `yaml:"hue"`
	Saturation float32 `yaml:"saturation"`
	Value      float32 `yaml:"value"`
	CycleSpeed float32 `yaml:"cycle_speed"`
}

// DefaultConfig returns the built-in scene: a spinning cube.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Mesh: MeshConfig{
			Kind:     "cube",
			Size:     1,
			Major:    0.8,
			Minor:    0.3,
			Segments: [2]int{24, 12},
		},
		Spin: SpinConfig{
			Axis:  [3]float32{0, 1, 0},
			Speed: 45,
		},
		Pose: PoseConfig{
			Tilt: [3]float32{20, 0, 10},
		},
		Orbit: OrbitConfig{
			Radius:   3,
			Step:     5,
			ZoomStep: 0.25,
		},
		Light: LightConfig{
			Enabled:     true,
			Ambient:     0.25,
			Directional: 0.75,
			Dir:         [3]float32{-1, -1, -1},
		},
		Render: RenderConfig{
			Mode:    "flat",
			Depth:   true,
			Workers: 1,
		},
		Background: BackgroundConfig{
			Hue:        210,
			Saturation: 0.6,
			Value:      0.15,
			CycleSpeed: 10,
		},
		HUD:         true,
		DigestEvery: 0,
	}
}

// LoadConfig decodes YAML over DefaultConfig. An empty document yields the
// defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	switch c.Mesh.Kind {
	case "cube", "torus", "axes":
	default:
		return fmt.Errorf("unknown mesh kind %q", c.Mesh.Kind)
	}
	if c.Mesh.Kind == "torus" {
		u, v := c.Mesh.Segments[0], c.Mesh.Segments[1]
		if u < 0 || v < 0 || u*v > render.MaxVertices {
			return fmt.Errorf("torus segments %dx%d exceed %d vertices", u, v, render.MaxVertices)
		}
	}
	if _, ok := render.ParseRenderMode(c.Render.Mode); !ok {
		return fmt.Errorf("unknown render mode %q", c.Render.Mode)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("invalid workers %d", c.Render.Workers)
	}
	if c.DigestEvery < 0 {
		return fmt.Errorf("invalid digest_every %d", c.DigestEvery)
	}
	return nil
}
