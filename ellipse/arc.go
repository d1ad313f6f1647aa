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

package ellipse

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// AppendArc appends a cubic Bézier approximation of part of the ellipse
// to p and returns the extended path.
//
// The arc starts at parametric angle start and covers the parametric
// angle sweep; positive values of sweep run in the direction of
// increasing parametric angle.  The arc starts a new subpath.  Tolerance
// bounds the distance between the curve and its approximation, in image
// units, and must be positive.  If p is nil, a new path is allocated.
func (e Ellipse) AppendArc(p *path.Data, start, sweep, tolerance float64) *path.Data {
	if p == nil {
		p = &path.Data{}
	}
	p = p.MoveTo(e.Point(start))

	// Number of subdivisions of a full turn such that the error stays
	// below tolerance.  The estimate is the one for circles, applied to
	// the larger semi-axis.
	scaledError := max(e.AX, e.BX) / tolerance
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := int(math.Ceil(nError * math.Abs(sweep) / (2 * math.Pi)))
	n = max(n, 1)

	step := sweep / float64(n)
	arm := (4.0 / 3.0) * math.Tan(step/4)

	t0 := start
	p0 := e.Point(t0)
	for i := 1; i <= n; i++ {
		t1 := start + float64(i)*step
		p3 := e.Point(t1)
		p1 := p0.Add(e.Tangent(t0).Mul(arm))
		p2 := p3.Sub(e.Tangent(t1).Mul(arm))
		p = p.CubeTo(p1, p2, p3)
		t0, p0 = t1, p3
	}
	return p
}

// AppendFull appends the whole ellipse to p as a closed subpath.
func (e Ellipse) AppendFull(p *path.Data, tolerance float64) *path.Data {
	return e.AppendArc(p, 0, 2*math.Pi, tolerance).Close()
}
