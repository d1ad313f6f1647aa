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

package arcpath

import (
	"math"

	"seehuhn.de/go/arcpath/ellipse"
)

// Span says whether an arc is drawn as a closed curve or as an open arc.
type Span int

const (
	// OpenArc is a proper sub-arc of the ellipse.
	OpenArc Span = iota

	// FullCurve is (approximately) the whole ellipse.
	FullCurve
)

func (s Span) String() string {
	switch s {
	case OpenArc:
		return "open arc"
	case FullCurve:
		return "full curve"
	default:
		return "Span(invalid)"
	}
}

// DefaultMinEndpointDistance is the distance in pixels below which the
// two end points of an arc are treated as coincident.
const DefaultMinEndpointDistance = 2.0

// Classify decides whether rec is drawn as a full curve or as an open arc.
//
// Records flagged as full by the detector are full curves.  For circles,
// an arc whose end points are less than about one diagonal pixel step
// apart along the circle, in the positive direction, is also a full
// curve; general ellipses rely on the detector's flag alone.  Finally,
// any arc with end points at most minDist apart in image coordinates is
// drawn as a full curve, since the arc command is unstable for nearly
// coincident end points.
func Classify(rec Record, minDist float64) Span {
	p1, p2 := rec.Pixel()
	if p1.Sub(p2).Length() <= minDist {
		return FullCurve
	}
	if rec.Full {
		return FullCurve
	}
	if rec.IsCircle() && closedCircle(rec) {
		return FullCurve
	}
	return OpenArc
}

// closedCircle checks whether the end points of a circular arc are closer
// along the circle than one diagonal pixel step.
func closedCircle(rec Record) bool {
	p1, p2 := rec.Pixel()
	start := math.Atan2(p1.Y-rec.Center.Y, p1.X-rec.Center.X)
	end := math.Atan2(p2.Y-rec.Center.Y, p2.X-rec.Center.X)

	d := end - start
	span := ellipse.NormalizeAngle(d)
	signed := math.Atan2(math.Sin(d), math.Cos(d))

	circumference := 2 * math.Pi * rec.AX
	threshold := 2 * math.Pi * math.Sqrt2 / circumference
	return span < threshold && signed > 0
}
