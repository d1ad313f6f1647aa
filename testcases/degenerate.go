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

package testcases

import "seehuhn.de/go/arcpath"

// Arcs with end points too close to define a stable arc are drawn as
// closed curves.
var degenerateCases = []TestCase{
	{
		Name: "circle_within_2px",
		Arc: arcpath.Raw{
			X1: 10, Y1: 0, X2: 10, Y2: 0.1,
			AX: 10, BX: 10,
		},
		Width:  32,
		Height: 32,
		Want:   Closed{Kind: "circle"},
	},
	{
		Name:   "circle_coincident",
		Arc:    circleArc(32, 32, 20, 45, 45),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "circle"},
	},
	{
		Name: "circle_exactly_2px",
		Arc: arcpath.Raw{
			X1: 52, Y1: 32, X2: 52, Y2: 34,
			CX: 32, CY: 32,
			AX: 20, BX: 20,
		},
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "circle"},
	},
	{
		Name:   "circle_nearly_full",
		Arc:    circleArc(32, 32, 20, 30, 29.5), // almost the whole circle
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "circle"},
	},
	{
		Name:   "ellipse_coincident",
		Arc:    ellipseArc(32, 32, 24, 12, 30, 120, 120),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "ellipse"},
	},
	{
		Name:   "ellipse_within_2px",
		Arc:    ellipseArc(32, 32, 24, 12, 30, 0, 3), // about 0.6px apart
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "ellipse"},
	},
	{
		// the arc runs over half the ellipse, but both ends of the
		// short minor axis lie within 2px of each other
		Name:   "ellipse_thin_minor_axis",
		Arc:    ellipseArc(32, 32, 24, 0.8, 0, 90, 270),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "ellipse"},
	},
}
