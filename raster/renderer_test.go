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
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/arcpath"
	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/geom/vec"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer(nil)
	require.NoError(t, err)
	return rd
}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestDrawFullCircle(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	rec, err := arcpath.NewRecord(arcpath.Raw{CX: 32, CY: 32, AX: 20, BX: 20, X1: 52, Y1: 32, X2: 32, Y2: 52, Full: true})
	require.NoError(t, err)
	rd.Draw(img, rec)

	// all four extreme points are on the stroke
	for _, p := range []image.Point{{51, 32}, {12, 31}, {31, 51}, {32, 12}} {
		c := img.RGBAAt(p.X, p.Y)
		assert.Greater(t, c.A, uint8(200), "pixel %v", p)
		assert.Equal(t, c.A, c.R, "pixel %v", p)
		assert.Zero(t, c.G)
		assert.Zero(t, c.B)
	}
	assert.Zero(t, alphaAt(img, 32, 32))
	assert.Zero(t, alphaAt(img, 0, 0))
}

func TestDrawOpenArc(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	rec, err := arcpath.NewRecord(arcpath.Raw{
		CX: 32, CY: 32, AX: 20, BX: 20,
		AngStart: 0, AngEnd: math.Pi / 2,
	})
	require.NoError(t, err)
	rd.Draw(img, rec)

	assert.NotZero(t, alphaAt(img, 46, 46), "45 degrees")
	assert.Zero(t, alphaAt(img, 17, 17), "225 degrees")
	assert.Zero(t, alphaAt(img, 12, 32), "180 degrees")
}

func TestDrawWrapAround(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	// from 350 to 10 degrees, passing through zero
	rd.Ellipse(img, vec.Vec2{X: 32, Y: 32}, 20, 20, 0, 350, 10)

	assert.Greater(t, alphaAt(img, 51, 32), uint8(200))
	assert.Zero(t, alphaAt(img, 12, 32))
	assert.Zero(t, alphaAt(img, 31, 51))
}

func TestDrawRotatedEllipse(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	// major axis vertical
	rd.Ellipse(img, vec.Vec2{X: 32, Y: 32}, 25, 10, 90, 0, 360)

	assert.NotZero(t, alphaAt(img, 32, 56))
	assert.NotZero(t, alphaAt(img, 32, 7))
	assert.Zero(t, alphaAt(img, 56, 32))
	assert.NotZero(t, alphaAt(img, 41, 32))
}

func TestDrawRaw(t *testing.T) {
	logBuf := &bytes.Buffer{}
	style := DefaultStyle()
	style.Logger = slog.New(slog.NewTextHandler(logBuf, nil))
	rd, err := NewRenderer(style)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	rejected := rd.DrawRaw(img, []arcpath.Raw{
		{CX: 16, CY: 16, AX: 10, BX: 5, Full: true, Label: 1},
		{CX: 16, CY: 16, AX: 10, BX: 0, Label: 2},
	})

	require.Len(t, rejected, 1)
	assert.Equal(t, 1, rejected[0].Index)
	assert.Equal(t, 2, rejected[0].Label)
	assert.ErrorIs(t, rejected[0].Err, arcpath.ErrInvalidGeometry)
	assert.Contains(t, logBuf.String(), "arc not drawn")

	assert.NotZero(t, alphaAt(img, 25, 16))
}

func TestDrawDocument(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))

	doc := svg.New(64, 64)
	doc.Append(&svg.Circle{
		Center: vec.Vec2{X: 32, Y: 32}, R: 20,
		Style: svg.Style{Stroke: "blue", StrokeWidth: 2},
	})
	doc.Append(&svg.Polygon{
		Points: []vec.Vec2{{X: 4, Y: 4}, {X: 10, Y: 4}, {X: 10, Y: 10}},
		Style:  svg.Style{Stroke: "no-such-colour"},
	})
	rd.DrawDocument(img, doc)

	c := img.RGBAAt(51, 32)
	assert.Greater(t, c.B, uint8(200))
	assert.Zero(t, c.R)

	// unknown colours fall back to the renderer's colour
	c = img.RGBAAt(7, 4)
	assert.NotZero(t, c.R)
	assert.Zero(t, c.B)
}

func TestDrawOffsetBounds(t *testing.T) {
	rd := newTestRenderer(t)
	img := image.NewRGBA(image.Rect(100, 100, 140, 140))
	rd.Ellipse(img, vec.Vec2{X: 120, Y: 120}, 10, 10, 0, 0, 360)

	assert.NotZero(t, alphaAt(img, 129, 120))
	assert.Zero(t, alphaAt(img, 120, 120))

	// the mask is cleared after each call
	other := image.NewRGBA(image.Rect(100, 100, 140, 140))
	rd.Ellipse(other, vec.Vec2{X: 110, Y: 110}, 2, 2, 0, 0, 360)
	assert.Zero(t, alphaAt(other, 129, 120))
}

func TestLoadStyle(t *testing.T) {
	in := `
color = "steelblue"
thickness = 3.0
cap = "butt"
`
	s, err := LoadStyle(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "steelblue", s.Color)
	assert.Equal(t, 3.0, s.Thickness)
	assert.Equal(t, "butt", s.Cap)
	assert.Equal(t, "round", s.Join)

	rd, err := NewRenderer(s)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, rd.res.color)
}

func TestLoadStyleErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`color = "nope"`, "unknown colour"},
		{`cap = "pointy"`, "unknown line cap"},
		{`join = "weld"`, "unknown line join"},
		{`thickness = 0.0`, "invalid thickness"},
		{`flatness = -1.0`, "invalid flatness"},
		{`colour = "red"`, "reading style"},
	}
	for _, tc := range cases {
		_, err := LoadStyle(strings.NewReader(tc.in))
		assert.ErrorContains(t, err, tc.want, tc.in)
	}
}
