// Package projection maps rotated object-space points onto the viewport.
package projection

import "axiscube/internal/vecmath"

// DefaultZOffset pushes the cube in front of the projection plane.
const DefaultZOffset = 5.0

// Point is a position on the display surface, in pixels.
type Point struct {
	X, Y float64
}

// Viewport is the pixel size of the display surface.
type Viewport struct {
	Width, Height int
}

// Center returns the pixel the origin projects to.
func (vp Viewport) Center() Point {
	return Point{X: float64(vp.Width) / 2, Y: float64(vp.Height) / 2}
}

// ProjectPoint perspective-divides v after moving it zOffset along z and
// scales the result into the viewport.
//
// Depths at or behind the projection plane are not clipped: a zero depth
// yields infinities and a negative one mirrors the point. Surfaces are
// expected to skip non-finite coordinates.
func ProjectPoint(v vecmath.Vec3, zOffset float64, vp Viewport) Point {
	z := v.Z + zOffset
	x := v.X / z
	y := v.Y / z
	return Point{
		X: (x + 1) * float64(vp.Width) / 2,
		Y: (y + 1) * float64(vp.Height) / 2,
	}
}

// Project maps every vertex of a face, preserving its winding order.
func Project(face []vecmath.Vec3, zOffset float64, vp Viewport) []Point {
	out := make([]Point, len(face))
	for i, v := range face {
		out[i] = ProjectPoint(v, zOffset, vp)
	}
	return out
}
