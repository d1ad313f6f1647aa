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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/arcpath/ellipse"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ringPath returns an elliptical ring: the outer ellipse runs forwards
// and the inner one backwards.
func ringPath(size int) *path.Data {
	c := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
	outer := ellipse.Ellipse{Center: c, Theta: 0.3, AX: 0.45 * float64(size), BX: 0.3 * float64(size)}
	inner := ellipse.Ellipse{Center: c, Theta: 0.3, AX: 0.3 * float64(size), BX: 0.15 * float64(size)}
	p := outer.AppendFull(nil, 0.1)
	return inner.AppendArc(p, 0, -2*math.Pi, 0.1).Close()
}

func BenchmarkRasteriserRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			p := ringPath(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing draws the same ring with x/image/vector.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			p := ringPath(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addToVector(r, p)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkRendererArc(b *testing.B) {
	rd, err := NewRenderer(nil)
	if err != nil {
		b.Fatal(err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 400, 400))

	b.ReportAllocs()
	for b.Loop() {
		rd.Ellipse(dst, vec.Vec2{X: 200, Y: 200}, 180, 90, 30, 20, 300)
	}
}

func addToVector(r *vector.Rasterizer, p *path.Data) {
	f := func(v vec.Vec2) (float32, float32) { return float32(v.X), float32(v.Y) }
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(f(p.Coords[k]))
			k++
		case path.CmdLineTo:
			r.LineTo(f(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			bx, by := f(p.Coords[k])
			cx, cy := f(p.Coords[k+1])
			r.QuadTo(bx, by, cx, cy)
			k += 2
		case path.CmdCubeTo:
			bx, by := f(p.Coords[k])
			cx, cy := f(p.Coords[k+1])
			dx, dy := f(p.Coords[k+2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
			k += 3
		case path.CmdClose:
			r.ClosePath()
		}
	}
}
