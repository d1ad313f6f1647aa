// seehuhn.de/go/arcpath - vector paths for detected elliptical arcs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ellipse implements the geometry of rotated ellipses in image
// coordinates.
//
// An ellipse is the image of the unit circle under the affine map which
// scales by the semi-axes, rotates by Theta and translates to Center.
// Points on the unit circle are called local coordinates; the parameter
// t of the point (cos t, sin t) is the parametric angle.
package ellipse

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Ellipse describes a rotated ellipse.
type Ellipse struct {
	Center vec.Vec2 // center, in image coordinates
	Theta  float64  // angle between the first semi-axis and the x-axis, in radians
	AX, BX float64  // semi-axis lengths along the rotated x and y directions
}

// Matrix returns the map from local coordinates to image coordinates.
//
// Local coordinates are first scaled by (AX, BX), then rotated by Theta,
// then translated to Center.  The result uses the PDF convention
// x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
func (e Ellipse) Matrix() matrix.Matrix {
	sin, cos := math.Sincos(e.Theta)
	return matrix.Matrix{
		e.AX * cos, e.AX * sin,
		-e.BX * sin, e.BX * cos,
		e.Center.X, e.Center.Y,
	}
}

// Transform maps a point from local coordinates to image coordinates.
func (e Ellipse) Transform(u vec.Vec2) vec.Vec2 {
	m := e.Matrix()
	return vec.Vec2{
		X: m[0]*u.X + m[2]*u.Y + m[4],
		Y: m[1]*u.X + m[3]*u.Y + m[5],
	}
}

// transformLinear applies only the 2×2 linear part of the local-to-image
// map, for direction vectors.
func (e Ellipse) transformLinear(v vec.Vec2) vec.Vec2 {
	m := e.Matrix()
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Point returns the point with parametric angle t.
func (e Ellipse) Point(t float64) vec.Vec2 {
	sin, cos := math.Sincos(t)
	return e.Transform(vec.Vec2{X: cos, Y: sin})
}

// Tangent returns the derivative of Point at t.
func (e Ellipse) Tangent(t float64) vec.Vec2 {
	sin, cos := math.Sincos(t)
	return e.transformLinear(vec.Vec2{X: -sin, Y: cos})
}

// IsCircle reports whether the two semi-axes are equal, up to rounding.
func (e Ellipse) IsCircle() bool {
	return NearlyEqual(e.AX, e.BX)
}

// NearlyEqual compares two floating point numbers with a relative
// tolerance of a few hundred units in the last place.
func NearlyEqual(a, b float64) bool {
	if a == b {
		return true
	}
	absMax := max(math.Abs(a), math.Abs(b))
	if absMax < math.SmallestNonzeroFloat64 {
		absMax = math.SmallestNonzeroFloat64
	}
	return math.Abs(a-b)/absMax <= relativeErrorFactor*epsilon
}

// NormalizeAngle maps an angle into the interval [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi { // a tiny negative input rounds up to 2π
		a = 0
	}
	return a
}

const (
	// epsilon is the difference between 1 and the next float64.
	epsilon = 0x1p-52

	// relativeErrorFactor scales epsilon in NearlyEqual.
	relativeErrorFactor = 100.0
)
