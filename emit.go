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
	"slices"

	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/geom/vec"
)

const radToDeg = 180 / math.Pi

// Emit builds the output element for a classified record.
//
// Full curves become a circle element if the semi-axes agree, and a
// rotated ellipse element otherwise.  Open arcs become a path from p1 to
// p2 with the given flags; p1 and p2 must be in image coordinates.
func (opt *Options) Emit(rec Record, span Span, p1, p2 vec.Vec2, flags Flags) svg.Element {
	if span == FullCurve {
		if rec.IsCircle() {
			return &svg.Circle{
				Center: rec.Center,
				R:      rec.AX,
				Style:  svg.Style{Stroke: opt.CircleStroke, StrokeWidth: opt.StrokeWidth},
				Label:  rec.Label,
			}
		}
		return &svg.Ellipse{
			Center:   rec.Center,
			RX:       rec.AX,
			RY:       rec.BX,
			Rotation: rec.Theta * radToDeg,
			Style:    svg.Style{Stroke: opt.EllipseStroke, StrokeWidth: opt.StrokeWidth},
			Label:    rec.Label,
		}
	}

	return &svg.Path{
		Arc: svg.ArcPath{
			From:     p1,
			To:       p2,
			RX:       rec.AX,
			RY:       rec.BX,
			Rotation: rec.Theta * radToDeg,
			LargeArc: flags.LargeArc,
			Sweep:    flags.Sweep,
		},
		Style: svg.Style{Stroke: opt.ArcStroke, StrokeWidth: opt.StrokeWidth},
		Label: rec.Label,
	}
}

// Element classifies a validated record and builds its output element.
func (opt *Options) Element(rec Record) svg.Element {
	span := Classify(rec, opt.MinEndpointDistance)
	if span == FullCurve {
		return opt.Emit(rec, span, vec.Vec2{}, vec.Vec2{}, Flags{})
	}
	p1, p2 := rec.Pixel()
	flags := ArcFlags(rec.Ends.Angles(rec.Ellipse))
	return opt.Emit(rec, span, p1, p2, flags)
}

// PolygonElement converts a detected polygon into an output element.
// The element owns a copy of the points.
func (opt *Options) PolygonElement(poly Polygon) svg.Element {
	return &svg.Polygon{
		Points: slices.Clone(poly.Points),
		Style:  svg.Style{Stroke: opt.PolygonStroke, StrokeWidth: opt.StrokeWidth},
		Label:  poly.Label,
	}
}
