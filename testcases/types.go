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

// Package testcases holds named arc records with their expected
// conversion, shared by the tests, benchmarks and the reference file
// generators.
package testcases

import (
	"math"

	"seehuhn.de/go/arcpath"
)

// TestCase defines a single conversion test.
type TestCase struct {
	Name   string      // lowercase a-z, 0-9 and _ only
	Arc    arcpath.Raw // the detector record
	Width  int         // canvas width in pixels
	Height int         // canvas height in pixels
	Want   Outcome     // expected result
}

// Outcome is the expected result of converting an arc.
type Outcome interface {
	isOutcome()
}

// Closed expects a closed curve element.
type Closed struct {
	Kind string // "circle" or "ellipse"
}

func (Closed) isOutcome() {}

// Open expects an arc path.
type Open struct {
	D        string // expected path data; empty to skip the comparison
	LargeArc bool
}

func (Open) isOutcome() {}

// Rejected expects the record to be rejected as invalid.
type Rejected struct {
	Field string // name of the offending field
}

func (Rejected) isOutcome() {}

// circleArc builds a circular arc record with end points at the given
// angles (in degrees) on the circle.
func circleArc(cx, cy, r, startDeg, endDeg float64) arcpath.Raw {
	s0, c0 := math.Sincos(startDeg * math.Pi / 180)
	s1, c1 := math.Sincos(endDeg * math.Pi / 180)
	return arcpath.Raw{
		X1: cx + r*c0, Y1: cy + r*s0,
		X2: cx + r*c1, Y2: cy + r*s1,
		CX: cx, CY: cy,
		AX: r, BX: r,
		AngStart: startDeg * math.Pi / 180,
		AngEnd:   endDeg * math.Pi / 180,
		WMin:     1, WMax: 2,
	}
}

// ellipseArc builds an elliptical arc record with end points given by
// their parametric angles, in degrees.
func ellipseArc(cx, cy, ax, bx, thetaDeg, startDeg, endDeg float64) arcpath.Raw {
	s0, c0 := math.Sincos(startDeg * math.Pi / 180)
	s1, c1 := math.Sincos(endDeg * math.Pi / 180)
	return arcpath.Raw{
		X1: c0, Y1: s0,
		X2: c1, Y2: s1,
		CX: cx, CY: cy,
		Theta:    thetaDeg * math.Pi / 180,
		AX:       ax,
		BX:       bx,
		AngStart: startDeg * math.Pi / 180,
		AngEnd:   endDeg * math.Pi / 180,
		WMin:     1, WMax: 2,
	}
}

// full marks a record as a full curve.
func full(raw arcpath.Raw) arcpath.Raw {
	raw.Full = true
	return raw
}
