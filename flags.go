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

// Flags are the two flags of an elliptical arc path command.
type Flags struct {
	LargeArc bool // the arc spans more than 180 degrees
	Sweep    bool // the arc runs in the direction of increasing angle
}

// ArcFlags computes the path command flags for an arc running from
// parametric angle start to parametric angle end, in the direction of
// increasing angle.
//
// The detector always reports arcs in this direction, so Sweep is always
// set.
func ArcFlags(start, end float64) Flags {
	start = ellipse.NormalizeAngle(start)
	end = ellipse.NormalizeAngle(end)
	if end < start {
		end += 2 * math.Pi
	}
	return Flags{
		LargeArc: end-start > math.Pi,
		Sweep:    true,
	}
}
