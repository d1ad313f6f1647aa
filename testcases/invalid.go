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

// Malformed records are rejected and do not appear in the output.
var invalidCases = []TestCase{
	{
		Name:   "zero_axis",
		Arc:    arcpath.Raw{X1: 1, X2: 0, Y2: 1, CX: 10, CY: 10, AX: 0, BX: 5},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "ax"},
	},
	{
		Name:   "zero_circle",
		Arc:    arcpath.Raw{X1: 10, Y1: 10, X2: 10, Y2: 10, CX: 10, CY: 10},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "ax"},
	},
	{
		Name:   "negative_axis",
		Arc:    arcpath.Raw{X1: 1, X2: 0, Y2: 1, CX: 10, CY: 10, AX: 5, BX: -2},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "bx"},
	},
	{
		Name:   "nan_center",
		Arc:    arcpath.Raw{X1: 1, X2: 0, Y2: 1, CX: math.NaN(), CY: 10, AX: 5, BX: 2},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "cx"},
	},
	{
		Name:   "infinite_rotation",
		Arc:    arcpath.Raw{X1: 1, X2: 0, Y2: 1, CX: 10, CY: 10, Theta: math.Inf(1), AX: 5, BX: 2},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "theta"},
	},
	{
		Name:   "nan_stroke_width",
		Arc:    arcpath.Raw{X1: 1, X2: 0, Y2: 1, CX: 10, CY: 10, AX: 5, BX: 2, WMax: math.NaN()},
		Width:  32,
		Height: 32,
		Want:   Rejected{Field: "wmax"},
	},
}
