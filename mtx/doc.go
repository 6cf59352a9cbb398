// Package mtx provides the 2×2, 3×3 and 4×4 float matrices used to place
// geometry on screen.
//
// Matrices are indexed [row][col] and compose as row vectors: a point p is
// transformed as p·M, so Translate stores the offset in row 3 and Mul(a, b)
// applies a first, then b.
//
// Quaternion rotation blocks from quat.QuatF.ToMatrix use the column-vector
// layout; Transpose converts between the two.
package mtx
