// Package vecmath holds the fixed-size linear algebra used to spin the cube.
package vecmath

import (
	"errors"
	"math"
)

// ErrZeroVector is returned when a vector without a direction is normalized.
var ErrZeroVector = errors.New("vector has zero length")

// Vec3 is a point or direction in object space.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Len returns the Euclidean length of v without squaring components
// directly.
func (v Vec3) Len() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Normalize returns v / |v|. Zero and non-finite lengths are rejected.
// v is first divided by its largest component so that squaring cannot
// overflow or underflow.
func Normalize(v Vec3) (Vec3, error) {
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vec3{}, ErrZeroVector
	}
	u := Vec3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	n := u.Len()
	return Vec3{X: u.X / n, Y: u.Y / n, Z: u.Z / n}, nil
}

// RotationMatrix builds the Euler-Rodrigues matrix for a rotation of angle
// radians about a unit axis. The matrix is meant to be applied to row
// vectors (v * M), see ApplyRotation.
func RotationMatrix(angle float64, axis Vec3) Mat3 {
	half := angle / 2
	s := math.Sin(half)
	a := math.Cos(half)
	b, c, d := -axis.X*s, -axis.Y*s, -axis.Z*s

	aa, bb, cc, dd := a*a, b*b, c*c, d*d
	bc, ad, ac, ab, bd, cd := b*c, a*d, a*c, a*b, b*d, c*d

	return Mat3{
		{aa + bb - cc - dd, 2 * (bc - ad), 2 * (bd + ac)},
		{2 * (bc + ad), aa + cc - bb - dd, 2 * (cd - ab)},
		{2 * (bd - ac), 2 * (cd + ab), aa + dd - bb - cc},
	}
}

// MulRow multiplies the row vector v by m.
func (m Mat3) MulRow(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns m with rows and columns swapped.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// ApplyRotation rotates every vertex by m and returns the results in a new
// slice. The input is left untouched.
func ApplyRotation(m Mat3, vertices []Vec3) []Vec3 {
	out := make([]Vec3, len(vertices))
	for i, v := range vertices {
		out[i] = m.MulRow(v)
	}
	return out
}
