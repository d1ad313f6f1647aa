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

// Package raster draws arcs and synthesized documents into pixel images.
//
// The Rasteriser computes anti-aliased pixel coverage for filled and
// stroked paths.  The Renderer uses it to stroke elliptical arcs onto a
// draw.Image, as an overlay for the source image of the detector.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a line segment in device space, stored top to bottom.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point, y1 > y0
	slope  float64 // dx/dy
	dir    float32 // +1 if the segment was drawn downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.slope*(y-e.y0)
}

// run is a polyline in the flattened path.  It ends at index end of the
// point buffer and starts where the previous run ended.
type run struct {
	end    int
	closed bool
}

// Rasteriser converts paths to pixel coverage values.
//
// A Rasteriser can be reused for any number of paths; internal buffers
// grow as needed and are kept between calls.  A Rasteriser must not be
// used concurrently.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates, with
	// integer-aligned corners.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// flattened path
	pts      []vec.Vec2
	runs     []run
	runStart int
	drawn    bool

	// stroke outline polygons
	poly      []vec.Vec2
	polyEnds  []int
	polyStart int

	// scan conversion
	edges       []edge
	active      []int
	cover, area []float32
	splits      []float64
	devMin      vec.Vec2
	devMax      vec.Vec2
}

// NewRasteriser creates a new Rasteriser for the given clip rectangle,
// with the PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills the path using the nonzero winding rule.  Open
// subpaths are closed implicitly.
//
// Coverage is delivered row by row to emit.  The coverage slice is only
// valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flatten(p)

	r.resetEdges()
	start := 0
	for _, rn := range r.runs {
		pts := r.pts[start:rn.end]
		start = rn.end
		for i := range pts {
			r.addEdge(pts[i], pts[(i+1)%len(pts)])
		}
	}
	r.scan(emit)
}

// device maps a point from user space to device space.
func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// deviceLength returns the device-space length of a user-space vector.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}.Length()
}

// flatten converts p into polylines, stored in r.pts and r.runs.
// Consecutive duplicate points are dropped.
func (r *Rasteriser) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.runs = r.runs[:0]
	r.runStart = 0
	r.drawn = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.endRun(false)
			cur = p.Coords[k]
			start = cur
			r.pts = append(r.pts, cur)
			k++
		case path.CmdLineTo:
			r.resume(cur)
			cur = p.Coords[k]
			r.lineTo(cur)
			k++
		case path.CmdQuadTo:
			r.resume(cur)
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.resume(cur)
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.endRun(true)
			cur = start
		}
	}
	r.endRun(false)
}

// resume starts a new run at cur, if drawing continues after a
// ClosePath without a MoveTo.
func (r *Rasteriser) resume(cur vec.Vec2) {
	if len(r.pts) == r.runStart {
		r.pts = append(r.pts, cur)
	}
}

func (r *Rasteriser) lineTo(q vec.Vec2) {
	r.drawn = true
	if q.Sub(r.pts[len(r.pts)-1]).Length() < zeroLengthThreshold {
		return
	}
	r.pts = append(r.pts, q)
}

// endRun finishes the current run.  Runs without any drawing command
// are dropped; a run which draws but never moves is kept as a single
// point, so that round caps can mark it.
func (r *Rasteriser) endRun(closed bool) {
	if !r.drawn {
		r.pts = r.pts[:r.runStart]
		return
	}
	if closed {
		n := len(r.pts)
		if n-r.runStart > 1 && r.pts[n-1].Sub(r.pts[r.runStart]).Length() < zeroLengthThreshold {
			r.pts = r.pts[:n-1]
		}
	}
	r.runs = append(r.runs, run{end: len(r.pts), closed: closed})
	r.runStart = len(r.pts)
	r.drawn = false
}

// flattenQuadratic adds line segments approximating a quadratic Bézier
// curve.  The first point, p0, must already be in the buffer.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic adds line segments approximating a cubic Bézier curve.
// The number of segments is given by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	m := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)))
	n := 1
	if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

func (r *Rasteriser) resetEdges() {
	r.edges = r.edges[:0]
	r.devMin = vec.Vec2{X: math.Inf(1), Y: math.Inf(1)}
	r.devMax = vec.Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
}

// addEdge adds the segment from a to b, given in user space.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	a = r.device(a)
	b = r.device(b)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	e := edge{dir: 1}
	if dy < 0 {
		a, b = b, a
		e.dir = -1
	}
	e.x0, e.y0 = a.X, a.Y
	e.x1, e.y1 = b.X, b.Y
	e.slope = (b.X - a.X) / (b.Y - a.Y)
	r.edges = append(r.edges, e)

	r.devMin.X = min(r.devMin.X, a.X, b.X)
	r.devMax.X = max(r.devMax.X, a.X, b.X)
	r.devMin.Y = min(r.devMin.Y, a.Y)
	r.devMax.Y = max(r.devMax.Y, b.Y)
}

// Coverage model: for each pixel of a scanline, cover holds the signed
// height of all edge pieces inside the pixel column and area holds the
// part of this height which lies to the right of the edge.  Scanning
// from left to right, the coverage of pixel i is the sum of cover over
// all pixels left of i, plus area[i].

// scan converts the collected edges to coverage values, using the
// nonzero winding rule and an active edge list.
func (r *Rasteriser) scan(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.devMin.X)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devMax.X))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devMin.Y)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devMax.Y))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between the scanlines top and bottom to
// the coverage buffers.  It reports whether the edge overlaps the row.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	yTop := max(top, e.y0)
	yBot := min(bottom, e.y1)
	if yBot <= yTop {
		return false
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	lo := int(math.Floor(min(xa, xb)))
	hi := int(math.Floor(max(xa, xb)))
	if lo == hi {
		r.deposit(lo, e.dir*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	// split the edge where it crosses pixel column boundaries
	r.splits = append(r.splits[:0], yTop, yBot)
	inv := 1 / e.slope
	for x := lo + 1; x <= hi; x++ {
		if yx := e.y0 + (float64(x)-e.x0)*inv; yx > yTop && yx < yBot {
			r.splits = append(r.splits, yx)
		}
	}
	slices.Sort(r.splits)
	for i := 1; i < len(r.splits); i++ {
		ya, yb := r.splits[i-1], r.splits[i]
		if yb <= ya {
			continue
		}
		xm := e.xAt((ya + yb) / 2)
		r.deposit(int(math.Floor(xm)), e.dir*float32(yb-ya), xm, xMin, xMax)
	}
	return true
}

// deposit records a piece of edge with signed height h and mean position
// x inside pixel column pix.
func (r *Rasteriser) deposit(pix int, h float32, x float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += h
		r.area[0] += h
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += h
		r.area[i] += h * float32(1-(x-float64(pix)))
	}
}

// integrateNonZero turns accumulated cover and area values into coverage,
// in place in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		c := acc + area[i]
		acc += cover[i]
		if c < 0 {
			c = -c
		}
		cover[i] = min(c, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero values, and the offset of this part.  If all values are zero,
// the result is nil.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF.  Joins with an angle below about 11.5
	// degrees are bevelled.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
