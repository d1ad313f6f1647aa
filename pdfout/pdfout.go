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

// Package pdfout writes synthesized documents as PDF files.
//
// The page has the size of the source image, with one PDF unit per
// pixel.  Colours are converted to grey levels.
package pdfout

import (
	"golang.org/x/image/colornames"
	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// Tolerance is the accuracy, in pixels, of the Bézier curves used for
// closed ellipses and elliptical arcs.
const Tolerance = 0.01

// WriteFile writes doc to a single-page PDF file.
func WriteFile(fname string, doc *svg.Document) error {
	paper := &pdf.Rectangle{
		URx: float64(doc.Width),
		URy: float64(doc.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// image coordinates have the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(doc.Height)})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for _, el := range doc.Elements {
		outline := el.Outline(Tolerance)
		if len(outline.Cmds) == 0 {
			continue
		}

		paint := el.Paint()
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		page.SetStrokeColor(color.DeviceGray(Gray(paint.Stroke)))
		page.SetLineWidth(width)

		for cmd, pts := range outline.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// Gray returns the luminance of an SVG colour keyword, between 0 (black)
// and 1 (white).  Unknown names give black.
func Gray(name string) float64 {
	c, ok := colornames.Map[name]
	if !ok {
		return 0
	}
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
