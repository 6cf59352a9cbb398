package render

import "axis/color"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA8)
	Clear(c color.RGBA8)
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderWireframe RenderMode = iota
	RenderSolidFlat
	RenderSolidVertexColor
)

// ParseRenderMode maps "wireframe", "flat" and "vertex" to a RenderMode.
func ParseRenderMode(s string) (RenderMode, bool) {
	switch s {
	case "wireframe", "wire":
		return RenderWireframe, true
	case "flat", "solid", "":
		return RenderSolidFlat, true
	case "vertex", "vertexcolor":
		return RenderSolidVertexColor, true
	}
	return RenderSolidFlat, false
}

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	case RenderSolidVertexColor:
		return "vertex"
	default:
		return "flat"
	}
}
