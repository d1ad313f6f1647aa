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

// Package svg builds the vector output document: an ordered list of
// circles, ellipses, arc paths and polygons, written as SVG 1.1.
//
// Elements are written in the order they were appended.  Later elements
// are painted on top of earlier ones.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Document is an SVG drawing of a fixed pixel size.
type Document struct {
	Width, Height int

	// Precision is the number of digits after the decimal point used for
	// coordinates.  The special value -1 selects the shortest
	// representation which reads back to the same float64.
	Precision int

	Elements []Element
}

// New returns an empty document of the given size, with shortest number
// formatting.
func New(width, height int) *Document {
	return &Document{
		Width:     width,
		Height:    height,
		Precision: -1,
	}
}

// Append adds elements at the end of the document.
func (d *Document) Append(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// WriteTo writes the document as an SVG file.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	if _, err := bw.WriteString(xml.Header); err != nil {
		return cw.n, err
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")

	f := numFormat(d.Precision)
	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
			{Name: xml.Name{Local: "version"}, Value: "1.1"},
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(d.Width)},
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(d.Height)},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return cw.n, err
	}
	for i, el := range d.Elements {
		start := xml.StartElement{
			Name: xml.Name{Local: el.Kind()},
			Attr: el.attrs(f),
		}
		if err := enc.EncodeToken(start); err != nil {
			return cw.n, fmt.Errorf("svg: element %d: %w", i, err)
		}
		if err := enc.EncodeToken(start.End()); err != nil {
			return cw.n, fmt.Errorf("svg: element %d: %w", i, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return cw.n, err
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return cw.n, err
	}
	err := bw.Flush()
	return cw.n, err
}

// numFormat formats coordinates with a fixed number of digits after the
// decimal point, or with the shortest round-trip representation if
// negative.
type numFormat int

func (f numFormat) format(x float64) string {
	if x == 0 {
		x = 0 // avoid "-0"
	}
	s := strconv.FormatFloat(x, 'f', int(f), 64)
	if len(s) > 1 && s[0] == '-' && isZero(s[1:]) {
		s = s[1:]
	}
	return s
}

// isZero reports whether s consists of zeros and at most one decimal point.
func isZero(s string) bool {
	for _, c := range s {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
