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

var circleCases = []TestCase{
	{
		Name: "quarter_origin",
		Arc: arcpath.Raw{
			X1: 10, Y1: 0, X2: 0, Y2: 10,
			AX: 10, BX: 10,
		},
		Width:  32,
		Height: 32,
		Want:   Open{D: "M 10,0 A 10,10 0 0,1 0,10"},
	},
	{
		Name:   "quarter",
		Arc:    circleArc(32, 32, 20, 0, 90),
		Width:  64,
		Height: 64,
		Want:   Open{D: "M 52,32 A 20,20 0 0,1 32,52"},
	},
	{
		Name:   "half",
		Arc:    circleArc(32, 32, 20, 0, 180),
		Width:  64,
		Height: 64,
		Want:   Open{D: "M 52,32 A 20,20 0 0,1 12,32"},
	},
	{
		Name:   "three_quarter",
		Arc:    circleArc(32, 32, 20, 0, -90),
		Width:  64,
		Height: 64,
		Want:   Open{D: "M 52,32 A 20,20 0 1,1 32,12", LargeArc: true},
	},
	{
		Name:   "wrap_around",
		Arc:    circleArc(32, 32, 20, 300, 30), // crosses the positive x-axis
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: false},
	},
	{
		Name:   "large_wrap_around",
		Arc:    circleArc(32, 32, 20, 100, 30),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: true},
	},
	{
		Name:   "full_flag",
		Arc:    full(circleArc(32, 32, 20, 0, 90)),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "circle"},
	},
	{
		Name:   "rotated_frame",
		Arc:    rotate(circleArc(32, 32, 20, 10, 250), 1.2),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: true},
	},
}

// rotate sets the rotation of a record without moving its end points.
func rotate(raw arcpath.Raw, theta float64) arcpath.Raw {
	raw.Theta = theta
	return raw
}
