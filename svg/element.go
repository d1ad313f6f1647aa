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

package svg

import (
	"encoding/xml"
	"strconv"
	"strings"

	"seehuhn.de/go/arcpath/ellipse"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Element is one shape in a Document.
type Element interface {
	// Kind returns the SVG element name.
	Kind() string

	// Outline returns the shape as a path in image coordinates.  Curves are
	// approximated by cubic Bézier segments to within tolerance.
	Outline(tolerance float64) *path.Data

	// Paint returns the presentation attributes of the element.
	Paint() Style

	attrs(f numFormat) []xml.Attr
}

// Style holds the presentation attributes shared by all elements.
type Style struct {
	Stroke      string  // stroke colour name, e.g. "red"
	StrokeWidth float64 // zero omits the attribute
}

// Paint implements part of Element, for all element types.
func (s Style) Paint() Style { return s }

func (s Style) attrs(f numFormat) []xml.Attr {
	res := []xml.Attr{
		attr("fill", "none"),
		attr("stroke", s.Stroke),
	}
	if s.StrokeWidth != 0 {
		res = append(res, attr("stroke-width", f.format(s.StrokeWidth)))
	}
	return res
}

// Circle is a closed circle.
type Circle struct {
	Center vec.Vec2
	R      float64
	Style
	Label int // detector label, written as data-label
}

// Kind implements Element.
func (*Circle) Kind() string { return "circle" }

// Outline implements Element.
func (c *Circle) Outline(tolerance float64) *path.Data {
	e := ellipse.Ellipse{Center: c.Center, AX: c.R, BX: c.R}
	return e.AppendFull(nil, tolerance)
}

func (c *Circle) attrs(f numFormat) []xml.Attr {
	res := []xml.Attr{
		attr("cx", f.format(c.Center.X)),
		attr("cy", f.format(c.Center.Y)),
		attr("r", f.format(c.R)),
	}
	res = append(res, c.Style.attrs(f)...)
	return append(res, labelAttr(c.Label))
}

// Ellipse is a closed, possibly rotated ellipse.
type Ellipse struct {
	Center   vec.Vec2
	RX, RY   float64
	Rotation float64 // degrees, clockwise on screen
	Style
	Label int
}

// Kind implements Element.
func (*Ellipse) Kind() string { return "ellipse" }

// Outline implements Element.
func (e *Ellipse) Outline(tolerance float64) *path.Data {
	return e.geometry().AppendFull(nil, tolerance)
}

func (e *Ellipse) geometry() ellipse.Ellipse {
	return ellipse.Ellipse{
		Center: e.Center,
		Theta:  e.Rotation * degToRad,
		AX:     e.RX,
		BX:     e.RY,
	}
}

func (e *Ellipse) attrs(f numFormat) []xml.Attr {
	res := []xml.Attr{
		attr("cx", f.format(e.Center.X)),
		attr("cy", f.format(e.Center.Y)),
		attr("rx", f.format(e.RX)),
		attr("ry", f.format(e.RY)),
	}
	if e.Rotation != 0 {
		// SVG ellipses have no rotation attribute
		cx, cy := f.format(e.Center.X), f.format(e.Center.Y)
		res = append(res, attr("transform",
			"rotate("+f.format(e.Rotation)+" "+cx+" "+cy+")"))
	}
	res = append(res, e.Style.attrs(f)...)
	return append(res, labelAttr(e.Label))
}

// Path is an open elliptical arc, written as a path with a single move
// and a single arc command.
type Path struct {
	Arc ArcPath
	Style
	Label int
}

// Kind implements Element.
func (*Path) Kind() string { return "path" }

// Outline implements Element.
func (p *Path) Outline(tolerance float64) *path.Data {
	return p.Arc.Append(nil, tolerance)
}

func (p *Path) attrs(f numFormat) []xml.Attr {
	res := []xml.Attr{attr("d", p.Arc.format(f))}
	res = append(res, p.Style.attrs(f)...)
	return append(res, labelAttr(p.Label))
}

// Polygon is a closed polygon, passed through from the detector.
type Polygon struct {
	Points []vec.Vec2
	Style
	Label int
}

// Kind implements Element.
func (*Polygon) Kind() string { return "polygon" }

// Outline implements Element.
func (p *Polygon) Outline(float64) *path.Data {
	res := &path.Data{}
	for i, pt := range p.Points {
		if i == 0 {
			res = res.MoveTo(pt)
		} else {
			res = res.LineTo(pt)
		}
	}
	if len(p.Points) > 0 {
		res = res.Close()
	}
	return res
}

func (p *Polygon) attrs(f numFormat) []xml.Attr {
	var b strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.format(pt.X))
		b.WriteByte(',')
		b.WriteString(f.format(pt.Y))
	}
	res := []xml.Attr{attr("points", b.String())}
	res = append(res, p.Style.attrs(f)...)
	return append(res, labelAttr(p.Label))
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func labelAttr(label int) xml.Attr {
	return attr("data-label", strconv.Itoa(label))
}
