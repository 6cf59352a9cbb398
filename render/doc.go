// Package render is a small fixed-pipeline software rasterizer for
// visualizing orientations: meshes, a camera, one directional light.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Frame output.
//
// Object placement is a Transform (position, quaternion rotation, scale).
// Matrices come from package mtx and compose as row vectors, so the
// model-view-projection is model·view·proj.
//
// The renderer draws into a caller-provided Target and reuses its buffers
// between frames. Vertex transformation can be spread over several
// goroutines with SetWorkers; rasterization is serial.
package render
