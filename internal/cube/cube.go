// Package cube defines the fixed geometry of the rendered unit cube.
package cube

import "axiscube/internal/vecmath"

// Face is an ordered quad of vertex indices.
type Face [4]int

var vertices = [8]vecmath.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// Draw order matters: later faces are stroked over earlier ones.
var faces = [6]Face{
	{0, 1, 2, 3}, // front
	{1, 5, 6, 2}, // right
	{4, 5, 6, 7}, // back
	{0, 4, 7, 3}, // left
	{0, 1, 5, 4}, // bottom
	{2, 3, 7, 6}, // top
}

var faceNames = [6]string{"front", "right", "back", "left", "bottom", "top"}

// Vertices returns a copy of the eight cube corners.
func Vertices() []vecmath.Vec3 {
	out := make([]vecmath.Vec3, len(vertices))
	copy(out, vertices[:])
	return out
}

// Faces returns the six faces in draw order.
func Faces() [6]Face { return faces }

// FaceName returns the label of face i, e.g. "front".
func FaceName(i int) string { return faceNames[i] }

// Select picks the vertices of f out of verts, keeping the face winding.
func (f Face) Select(verts []vecmath.Vec3) [4]vecmath.Vec3 {
	return [4]vecmath.Vec3{verts[f[0]], verts[f[1]], verts[f[2]], verts[f[3]]}
}
