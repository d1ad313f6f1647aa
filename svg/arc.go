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

package svg

import (
	"math"
	"strings"

	"seehuhn.de/go/arcpath/ellipse"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const degToRad = math.Pi / 180

// ArcPath is the path "M x1,y1 A rx,ry rotation largeArc,sweep x2,y2".
//
// Of the four elliptical arcs through From and To with the given radii
// and rotation, LargeArc selects one of the two spanning more than 180
// degrees, and Sweep selects one traversed in the direction of increasing
// angle (clockwise on screen, since the y-axis points down).
type ArcPath struct {
	From, To vec.Vec2
	RX, RY   float64
	Rotation float64 // x-axis rotation, in degrees
	LargeArc bool
	Sweep    bool
}

// String returns the path data with shortest number formatting.
func (a ArcPath) String() string {
	return a.format(-1)
}

func (a ArcPath) format(f numFormat) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(f.format(a.From.X))
	b.WriteByte(',')
	b.WriteString(f.format(a.From.Y))
	b.WriteString(" A ")
	b.WriteString(f.format(a.RX))
	b.WriteByte(',')
	b.WriteString(f.format(a.RY))
	b.WriteByte(' ')
	b.WriteString(f.format(a.Rotation))
	b.WriteByte(' ')
	b.WriteString(flag(a.LargeArc))
	b.WriteByte(',')
	b.WriteString(flag(a.Sweep))
	b.WriteByte(' ')
	b.WriteString(f.format(a.To.X))
	b.WriteByte(',')
	b.WriteString(f.format(a.To.Y))
	return b.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Center converts the arc to center parametrisation, following the
// implementation notes of the SVG 1.1 specification (appendix F.6.5).
//
// The returned ellipse carries the radii after out-of-range correction.
// The arc starts at parametric angle start and covers the signed
// parametric angle sweep.  If ok is false, the end points coincide or a
// radius is zero, and the arc is drawn as nothing (or a straight line)
// by SVG renderers.
func (a ArcPath) Center() (e ellipse.Ellipse, start, sweep float64, ok bool) {
	rx, ry := math.Abs(a.RX), math.Abs(a.RY)
	if a.From == a.To || rx == 0 || ry == 0 {
		return ellipse.Ellipse{}, 0, 0, false
	}

	phi := a.Rotation * degToRad
	sinPhi, cosPhi := math.Sincos(phi)

	// step 1: move the origin to the chord midpoint and undo the rotation
	dx := (a.From.X - a.To.X) / 2
	dy := (a.From.Y - a.To.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// scale up radii which are too small to reach both end points
	lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: center in the rotated frame
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(num/den, 0))
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// step 3: back to image coordinates
	center := vec.Vec2{
		X: cosPhi*cx1 - sinPhi*cy1 + (a.From.X+a.To.X)/2,
		Y: sinPhi*cx1 + cosPhi*cy1 + (a.From.Y+a.To.Y)/2,
	}

	// step 4: angles
	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	start = math.Atan2(uy, ux)
	sweep = math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !a.Sweep && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if a.Sweep && sweep < 0 {
		sweep += 2 * math.Pi
	}

	e = ellipse.Ellipse{Center: center, Theta: phi, AX: rx, BX: ry}
	return e, start, sweep, true
}

// Append appends the arc to p as cubic Bézier segments.  Degenerate arcs
// become a straight line, as in SVG renderers.
func (a ArcPath) Append(p *path.Data, tolerance float64) *path.Data {
	e, start, sweep, ok := a.Center()
	if !ok {
		if p == nil {
			p = &path.Data{}
		}
		return p.MoveTo(a.From).LineTo(a.To)
	}
	return e.AppendArc(p, start, sweep, tolerance)
}
