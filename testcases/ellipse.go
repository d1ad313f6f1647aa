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

import (
	"math"

	"seehuhn.de/go/arcpath"
)

var ellipseCases = []TestCase{
	{
		Name:   "quarter",
		Arc:    ellipseArc(32, 32, 24, 12, 30, 0, 90),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: false},
	},
	{
		Name:   "three_quarter",
		Arc:    ellipseArc(32, 32, 24, 12, 30, 0, 270),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: true},
	},
	{
		Name:   "wrap_around",
		Arc:    ellipseArc(32, 32, 28, 10, -15, 320, 40),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: false},
	},
	{
		Name:   "upright",
		Arc:    ellipseArc(32, 32, 12, 26, 0, 45, 300),
		Width:  64,
		Height: 64,
		Want:   Open{LargeArc: true},
	},
	{
		Name: "vertical_major_axis",
		Arc: arcpath.Raw{
			X1: 1, Y1: 0, X2: 0, Y2: 1,
			CX: 5, CY: 5,
			Theta: math.Pi / 2,
			AX:    20, BX: 10,
		},
		Width:  32,
		Height: 32,
		Want:   Open{LargeArc: false},
	},
	{
		Name:   "full_flag",
		Arc:    full(ellipseArc(32, 32, 24, 12, 30, 0, 90)),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "ellipse"},
	},
	{
		Name:   "full_flag_open_ends",
		Arc:    full(ellipseArc(32, 32, 24, 12, 60, 10, 200)),
		Width:  64,
		Height: 64,
		Want:   Closed{Kind: "ellipse"},
	},
}
