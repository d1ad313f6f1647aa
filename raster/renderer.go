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
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/arcpath"
	"seehuhn.de/go/arcpath/ellipse"
	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Renderer strokes arcs onto images.
//
// A Renderer keeps its scratch buffers between calls and must not be
// used concurrently.
type Renderer struct {
	style *Style
	res   *resolved
	r     *Rasteriser
	mask  *image.Alpha
}

// NewRenderer creates a renderer for the given style.  If style is nil,
// DefaultStyle is used.
func NewRenderer(style *Style) (*Renderer, error) {
	if style == nil {
		style = DefaultStyle()
	}
	res, err := style.resolve()
	if err != nil {
		return nil, err
	}
	return &Renderer{
		style: style,
		res:   res,
		r:     NewRasteriser(rect.Rect{}),
	}, nil
}

// Ellipse strokes part of an ellipse onto dst.
//
// The ellipse has semi-axes ax and bx, and the first semi-axis is rotated
// by rotation degrees.  The arc runs from the parametric angle start to
// end, in degrees, in the direction of increasing angle; if end is
// smaller than start, the arc wraps around through 0.  Sweeps of 360
// degrees or more draw the closed ellipse.
func (rd *Renderer) Ellipse(dst draw.Image, center vec.Vec2, ax, bx, rotation, start, end float64) {
	e := ellipse.Ellipse{Center: center, Theta: rotation * degToRad, AX: ax, BX: bx}

	sweep := end - start
	if sweep < 0 {
		sweep = math.Mod(sweep, 360) + 360
	}
	var p *path.Data
	if sweep >= 360 {
		p = e.AppendArc(nil, start*degToRad, 2*math.Pi, rd.style.Flatness).Close()
	} else {
		p = e.AppendArc(nil, start*degToRad, sweep*degToRad, rd.style.Flatness)
	}
	rd.stroke(dst, p, rd.res.color, rd.style.Thickness)
}

// Draw strokes the arc of a record.  Records marked as full curves are
// drawn as closed ellipses, all others from AngStart to AngEnd.
//
// Unlike the vector output, this uses the detector's angles directly: the
// end points and the degeneracy guard play no role.
func (rd *Renderer) Draw(dst draw.Image, rec arcpath.Record) {
	start, end := 0.0, 360.0
	if !rec.Full {
		start = rec.AngStart * radToDeg
		end = rec.AngEnd * radToDeg
	}
	rd.Ellipse(dst, rec.Center, rec.AX, rec.BX, rec.Theta*radToDeg, start, end)
}

// DrawAll draws the records in order.
func (rd *Renderer) DrawAll(dst draw.Image, recs []arcpath.Record) {
	for _, rec := range recs {
		rd.Draw(dst, rec)
	}
}

// DrawRaw validates and draws detector records.  Invalid records are
// skipped, logged and returned.
func (rd *Renderer) DrawRaw(dst draw.Image, arcs []arcpath.Raw) []arcpath.Rejection {
	var rejected []arcpath.Rejection
	for i, raw := range arcs {
		rec, err := arcpath.NewRecord(raw)
		if err != nil {
			rd.style.logger().Warn("arc not drawn", "index", i, "label", raw.Label, "err", err)
			rejected = append(rejected, arcpath.Rejection{Index: i, Label: raw.Label, Err: err})
			continue
		}
		rd.Draw(dst, rec)
	}
	return rejected
}

// DrawDocument draws the outlines of all elements of doc, in document
// order, using the stroke colour and width of each element.  Elements
// with an unknown colour use the renderer's colour, and elements without
// a stroke width use the renderer's thickness.
func (rd *Renderer) DrawDocument(dst draw.Image, doc *svg.Document) {
	for _, el := range doc.Elements {
		paint := el.Paint()
		col := rd.res.color
		if c, err := lookupColor(paint.Stroke); err == nil {
			col = c
		}
		width := paint.StrokeWidth
		if width <= 0 {
			width = rd.style.Thickness
		}
		rd.stroke(dst, el.Outline(rd.style.Flatness), col, width)
	}
}

// stroke rasterises the stroke of p into the coverage mask and composites
// the covered area onto dst.
func (rd *Renderer) stroke(dst draw.Image, p *path.Data, col color.Color, width float64) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	if rd.mask == nil || rd.mask.Rect != b {
		rd.mask = image.NewAlpha(b)
	}

	rd.r.Reset(rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	})
	rd.r.Flatness = rd.style.Flatness
	rd.r.Width = width
	rd.r.Cap = rd.res.cap
	rd.r.Join = rd.res.join

	var dirty image.Rectangle
	rd.r.Stroke(p, func(y, xMin int, coverage []float32) {
		row := rd.mask.Pix[rd.mask.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = uint8(c*255 + 0.5)
		}
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if dirty.Empty() {
		return
	}

	draw.DrawMask(dst, dirty, image.NewUniform(col), image.Point{}, rd.mask, dirty.Min, draw.Over)

	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		row := rd.mask.Pix[rd.mask.PixOffset(dirty.Min.X, y):]
		clear(row[:dirty.Dx()])
	}
}
