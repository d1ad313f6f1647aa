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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke draws the outline of p using Width, Cap, Join and MiterLimit.
// Coverage is delivered as for FillNonZero.
//
// The stroke is built as a union of positively oriented polygons: one
// quadrilateral per flattened segment, plus one polygon for every join
// and cap.  Filling the union with the nonzero rule paints overlapping
// pieces once.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)

	r.poly = r.poly[:0]
	r.polyEnds = r.polyEnds[:0]
	r.polyStart = 0

	d := r.Width / 2
	start := 0
	for _, rn := range r.runs {
		r.strokeRun(r.pts[start:rn.end], rn.closed, d)
		start = rn.end
	}

	r.resetEdges()
	start = 0
	for _, end := range r.polyEnds {
		poly := r.poly[start:end]
		for i := range poly {
			r.addEdge(poly[i], poly[(i+1)%len(poly)])
		}
		start = end
	}
	r.scan(emit)
}

// strokeRun adds the outline polygons for one polyline.
func (r *Rasteriser) strokeRun(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	if n == 1 {
		// no direction, so only round caps leave a mark
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	}

	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		r.addSegment(pts[i], pts[(i+1)%n], d)
	}

	if closed {
		for i := range n {
			r.addJoin(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], d)
		}
		return
	}
	for i := 1; i < n-1; i++ {
		r.addJoin(pts[i-1], pts[i], pts[i+1], d)
	}
	r.addCap(pts[0], pts[1], d)
	r.addCap(pts[n-1], pts[n-2], d)
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns v rotated by 90 degrees, counter-clockwise in a y-up
// coordinate system.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

func (r *Rasteriser) addSegment(a, b vec.Vec2, d float64) {
	off := normal(unit(b.Sub(a))).Mul(d)
	r.poly = append(r.poly, a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	r.endPolygon()
}

// addCap adds the cap at end point p.  The line arrives at p from q.
func (r *Rasteriser) addCap(p, q vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		t := unit(p.Sub(q)).Mul(d)
		n := normal(t)
		r.poly = append(r.poly, p.Add(n), p.Add(n).Add(t), p.Sub(n).Add(t), p.Sub(n))
		r.endPolygon()
	}
}

// addJoin fills the gap on the outer side of the corner at p, between
// the segments a-p and p-b.
func (r *Rasteriser) addJoin(a, p, b vec.Vec2, d float64) {
	t1 := unit(p.Sub(a))
	t2 := unit(b.Sub(p))
	sin := t1.X*t2.Y - t1.Y*t2.X
	cos := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}

	// the outer side is opposite to the turning direction
	o1, o2 := normal(t1), normal(t2)
	if sin > 0 {
		o1, o2 = o1.Mul(-1), o2.Mul(-1)
	}
	r.poly = append(r.poly, p, p.Add(o1.Mul(d)))
	if r.Join == graphics.LineJoinMiter {
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the angle between the two tangents.
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+1e-10 {
			bis := o1.Add(o2)
			if l := bis.Length(); l > zeroLengthThreshold {
				r.poly = append(r.poly, p.Add(bis.Mul(d/(cosHalf*l))))
			}
		}
	}
	r.poly = append(r.poly, p.Add(o2.Mul(d)))
	r.endPolygon()
}

// addDisc adds a polygon approximating the circle of radius d around c.
// The number of vertices keeps the sagitta below the flatness tolerance.
func (r *Rasteriser) addDisc(c vec.Vec2, d float64) {
	rad := max(r.deviceLength(vec.Vec2{X: d}), r.deviceLength(vec.Vec2{Y: d}))
	n := 8
	if rad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/rad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	for i := range n {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.poly = append(r.poly, vec.Vec2{X: c.X + d*co, Y: c.Y + d*s})
	}
	r.endPolygon()
}

// endPolygon finishes the polygon started at r.polyStart.  The polygon
// is reversed if needed, so that all polygons wind the same way.
// Polygons without area are dropped.
func (r *Rasteriser) endPolygon() {
	poly := r.poly[r.polyStart:]
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	switch {
	case len(poly) < 3 || math.Abs(a) < zeroLengthThreshold:
		r.poly = r.poly[:r.polyStart]
		return
	case a < 0:
		slices.Reverse(poly)
	}
	r.polyEnds = append(r.polyEnds, len(r.poly))
	r.polyStart = len(r.poly)
}
