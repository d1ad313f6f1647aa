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
	"seehuhn.de/go/geom/vec"
)

// Raw is an arc as reported by the detector, before validation.
//
// For circular arcs (AX == BX) the end points are image coordinates.  For
// all other arcs they are local coordinates on the unit circle, before
// the ellipse's scaling, rotation and translation.
type Raw struct {
	X1, Y1, X2, Y2 float64 // end points of the arc
	Width          float64 // width of the detected ring, in pixels
	CX, CY         float64 // center of the ellipse
	Theta          float64 // rotation of the first semi-axis, in radians
	AX, BX         float64 // semi-axis lengths
	AngStart       float64 // parametric start angle, in radians
	AngEnd         float64 // parametric end angle, in radians
	WMin, WMax     float64 // stroke width bounds seen by the detector
	Full           bool    // the detector considers the arc a full curve
	Label          int
}

// Polygon is a polygon found by the detector.  Polygons are passed
// through to the output unchanged.
type Polygon struct {
	Points []vec.Vec2
	Label  int
}

// Endpoints holds the two end points of an arc.  It is either
// CircularEndpoints or LocalEllipseEndpoints.
type Endpoints interface {
	// Pixel returns the end points in image coordinates.
	Pixel(e ellipse.Ellipse) (p1, p2 vec.Vec2)

	// Angles returns the parametric angles of the end points.
	Angles(e ellipse.Ellipse) (start, end float64)

	isEndpoints()
}

// CircularEndpoints are end points given in image coordinates.
type CircularEndpoints struct {
	P1, P2 vec.Vec2
}

// Pixel implements Endpoints.
func (c CircularEndpoints) Pixel(ellipse.Ellipse) (vec.Vec2, vec.Vec2) {
	return c.P1, c.P2
}

// Angles implements Endpoints.  The angles are measured at the center, in
// the frame of the ellipse.
func (c CircularEndpoints) Angles(e ellipse.Ellipse) (float64, float64) {
	d1 := c.P1.Sub(e.Center)
	d2 := c.P2.Sub(e.Center)
	return math.Atan2(d1.Y, d1.X) - e.Theta, math.Atan2(d2.Y, d2.X) - e.Theta
}

func (CircularEndpoints) isEndpoints() {}

// LocalEllipseEndpoints are end points in local unit-circle coordinates.
type LocalEllipseEndpoints struct {
	U1, U2 vec.Vec2
}

// Pixel implements Endpoints, by applying the ellipse transform.
func (l LocalEllipseEndpoints) Pixel(e ellipse.Ellipse) (vec.Vec2, vec.Vec2) {
	return e.Transform(l.U1), e.Transform(l.U2)
}

// Angles implements Endpoints.
func (l LocalEllipseEndpoints) Angles(ellipse.Ellipse) (float64, float64) {
	return math.Atan2(l.U1.Y, l.U1.X), math.Atan2(l.U2.Y, l.U2.X)
}

func (LocalEllipseEndpoints) isEndpoints() {}

// Record is a validated arc.
type Record struct {
	ellipse.Ellipse
	Ends Endpoints

	AngStart, AngEnd float64
	Width            float64
	WMin, WMax       float64
	Full             bool
	Label            int
}

// NewRecord validates a raw detector record.
//
// Records with non-finite fields, negative or zero semi-axes are rejected
// with a *GeometryError.  The end point encoding is chosen from the
// semi-axes: circles use image coordinates, all other ellipses use local
// coordinates.
func NewRecord(raw Raw) (Record, error) {
	fields := []struct {
		name string
		val  float64
	}{
		{"x1", raw.X1}, {"y1", raw.Y1}, {"x2", raw.X2}, {"y2", raw.Y2},
		{"cx", raw.CX}, {"cy", raw.CY}, {"theta", raw.Theta},
		{"ax", raw.AX}, {"bx", raw.BX},
		{"ang_start", raw.AngStart}, {"ang_end", raw.AngEnd},
		{"wmin", raw.WMin}, {"wmax", raw.WMax},
		{"width", raw.Width},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return Record{}, &GeometryError{Label: raw.Label, Field: f.name, Value: f.val, Reason: "not finite"}
		}
	}
	for _, f := range fields[7:9] {
		switch {
		case f.val < 0:
			return Record{}, &GeometryError{Label: raw.Label, Field: f.name, Value: f.val, Reason: "negative semi-axis"}
		case f.val == 0:
			return Record{}, &GeometryError{Label: raw.Label, Field: f.name, Value: f.val, Reason: "zero semi-axis"}
		}
	}

	rec := Record{
		Ellipse: ellipse.Ellipse{
			Center: vec.Vec2{X: raw.CX, Y: raw.CY},
			Theta:  raw.Theta,
			AX:     raw.AX,
			BX:     raw.BX,
		},
		AngStart: raw.AngStart,
		AngEnd:   raw.AngEnd,
		Width:    raw.Width,
		WMin:     raw.WMin,
		WMax:     raw.WMax,
		Full:     raw.Full,
		Label:    raw.Label,
	}
	p1 := vec.Vec2{X: raw.X1, Y: raw.Y1}
	p2 := vec.Vec2{X: raw.X2, Y: raw.Y2}
	if rec.IsCircle() {
		rec.Ends = CircularEndpoints{P1: p1, P2: p2}
	} else {
		rec.Ends = LocalEllipseEndpoints{U1: p1, U2: p2}
	}
	return rec, nil
}

// Pixel returns the end points of the arc in image coordinates.
func (rec Record) Pixel() (p1, p2 vec.Vec2) {
	return rec.Ends.Pixel(rec.Ellipse)
}
