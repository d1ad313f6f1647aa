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

package detect

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/arcpath"
	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/geom/vec"
)

const ellipseFile = `7 10.000000 0.000000 0.000000 10.000000 0.000000 0.000000 10.000000 10.000000 0.000000 0.000000 1.570796 
8 1.000000 0.000000 0.000000 1.000000 5.000000 5.000000 20.000000 10.000000 1.570796 0.000000 1.570796 

9 1 2 3 4 5 6 7 8 9 10 11
`

func TestReadEllipses(t *testing.T) {
	arcs, err := ReadEllipses(strings.NewReader(ellipseFile))
	require.NoError(t, err)
	require.Len(t, arcs, 3)

	assert.Equal(t, arcpath.Raw{
		X1: 10, Y1: 0, X2: 0, Y2: 10,
		AX: 10, BX: 10,
		AngEnd: 1.570796,
		Label:  7,
	}, arcs[0])
	assert.Equal(t, 8, arcs[1].Label)
	assert.Equal(t, 5.0, arcs[1].CX)
	assert.Equal(t, 20.0, arcs[1].AX)
	assert.Equal(t, 1.570796, arcs[1].Theta)
	assert.Equal(t, 11.0, arcs[2].AngEnd)
	assert.False(t, arcs[2].Full)
}

func TestReadEllipsesErrors(t *testing.T) {
	cases := []struct {
		in   string
		line int
	}{
		{"1 2 3\n", 1},
		{"1 2 3 4 5 6 7 8 9 10 11 12\n\nx 2 3 4 5 6 7 8 9 10 11 12\n", 3},
		{"1 2 3 4 5 6 7 8 9 10 11 twelve\n", 1},
	}
	for _, tc := range cases {
		_, err := ReadEllipses(strings.NewReader(tc.in))
		var synErr *SyntaxError
		require.True(t, errors.As(err, &synErr), "%q: %v", tc.in, err)
		assert.Equal(t, tc.line, synErr.Line)
		assert.Contains(t, err.Error(), "line")
	}

	_, err := ReadEllipses(strings.NewReader("1 2 3\n"))
	assert.ErrorIs(t, err, errFieldCount)
}

func TestEllipsesRoundTrip(t *testing.T) {
	arcs := []arcpath.Raw{
		{X1: 1.5, Y1: -2.25, X2: 3, Y2: 4, CX: 100, CY: 200, AX: 30, BX: 10, Theta: 0.5, AngStart: 1, AngEnd: 2, Label: 1},
		{X1: 0.125, AX: 1, BX: 1, Label: 42},
	}
	buf := &bytes.Buffer{}
	require.NoError(t, WriteEllipses(buf, arcs))
	assert.True(t, strings.HasPrefix(buf.String(), "1 1.500000 -2.250000 3.000000 "))
	assert.True(t, strings.HasSuffix(buf.String(), " \n"))

	got, err := ReadEllipses(buf)
	require.NoError(t, err)
	assert.Equal(t, arcs, got)
}

func TestPolygons(t *testing.T) {
	in := "3 2 0.5 1.5 2.5 3.5 \n4 0\n"
	polys, err := ReadPolygons(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, polys, 2)
	assert.Equal(t, 3, polys[0].Label)
	assert.Equal(t, []vec.Vec2{{X: 0.5, Y: 1.5}, {X: 2.5, Y: 3.5}}, polys[0].Points)
	assert.Empty(t, polys[1].Points)

	buf := &bytes.Buffer{}
	require.NoError(t, WritePolygons(buf, polys))
	assert.Equal(t, "3 2 0.500000 1.500000 2.500000 3.500000 \n4 0 \n", buf.String())

	for _, bad := range []string{"1\n", "1 2 3 4 5\n", "1 -1\n", "1 1 a b\n"} {
		_, err := ReadPolygons(strings.NewReader(bad))
		var synErr *SyntaxError
		assert.True(t, errors.As(err, &synErr), "%q", bad)
	}
}

func TestLabelImage(t *testing.T) {
	l := NewLabelImage(4, 3)
	l.Set(1, 2, 5)
	l.Set(3, 0, 5)
	l.Set(9, 9, 5)
	assert.Equal(t, int32(5), l.At(1, 2))
	assert.Equal(t, int32(0), l.At(2, 1))
	assert.Equal(t, int32(0), l.At(-1, 0))
	assert.Equal(t, int32(0), l.At(4, 0))
	assert.Equal(t, 2, l.Count(5))
	assert.Equal(t, 10, l.Count(0))
}

func TestBorrowReleases(t *testing.T) {
	released := 0
	src := &Static{
		Input:     arcpath.Input{Width: 10, Height: 10},
		OnRelease: func() error { released++; return nil },
	}
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	errCallback := errors.New("callback failed")
	err := Borrow(src, img, func(res *Result) error {
		assert.Equal(t, 10, res.Width)
		return errCallback
	})
	assert.ErrorIs(t, err, errCallback)
	assert.Equal(t, 1, released)

	assert.Panics(t, func() {
		_ = Borrow(src, img, func(*Result) error { panic("boom") })
	})
	assert.Equal(t, 2, released)
}

func TestBorrowJoinsErrors(t *testing.T) {
	errRelease := errors.New("release failed")
	errCallback := errors.New("callback failed")
	src := &Static{OnRelease: func() error { return errRelease }}

	err := Borrow(src, nil, func(*Result) error { return errCallback })
	assert.ErrorIs(t, err, errRelease)
	assert.ErrorIs(t, err, errCallback)
}

type failingSource struct{}

func (failingSource) Detect(*image.Gray) (*Result, error) {
	return nil, errors.New("no detector")
}

func TestBorrowDetectError(t *testing.T) {
	called := false
	err := Borrow(failingSource{}, nil, func(*Result) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "no detector")
	assert.False(t, called)
}

func TestReleaseOnce(t *testing.T) {
	calls := 0
	errRelease := errors.New("release failed")
	res := NewResult(arcpath.Input{}, nil, func() error { calls++; return errRelease })
	assert.ErrorIs(t, res.Release(), errRelease)
	assert.ErrorIs(t, res.Release(), errRelease)
	assert.Equal(t, 1, calls)

	assert.NoError(t, NewResult(arcpath.Input{}, nil, nil).Release())
}

func TestSynthesizeFrom(t *testing.T) {
	// the detector reuses its buffers once a result is released
	pts := []vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 5}}
	labels := NewLabelImage(20, 20)
	labels.Set(3, 4, 1)
	src := &Static{
		Input: arcpath.Input{
			Width: 20, Height: 20,
			Arcs: []arcpath.Raw{
				{X1: 10, Y1: 0, X2: 0, Y2: 10, AX: 10, BX: 10, Label: 1},
				{AX: -1, BX: 1, Label: 2},
			},
			Polygons: []arcpath.Polygon{{Points: pts, Label: 3}},
		},
		Labels: labels,
		OnRelease: func() error {
			clear(pts)
			clear(labels.Pix)
			return nil
		},
	}

	report, err := SynthesizeFrom(src, image.NewGray(image.Rect(0, 0, 20, 20)), nil)
	require.NoError(t, err)
	require.Len(t, report.Document.Elements, 2)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, 2, report.Rejected[0].Label)

	poly, ok := report.Document.Elements[1].(*svg.Polygon)
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 5, Y: 5}, poly.Points[2])

	require.NotNil(t, report.Labels)
	assert.Equal(t, int32(1), report.Labels.At(3, 4))
	assert.Equal(t, 1, report.Labels.Count(1))

	// without a label image
	src.Labels = nil
	report, err = SynthesizeFrom(src, image.NewGray(image.Rect(0, 0, 20, 20)), nil)
	require.NoError(t, err)
	assert.Nil(t, report.Labels)
}

type emptySource struct{}

func (emptySource) Detect(*image.Gray) (*Result, error) { return nil, nil }

func TestBorrowNoResult(t *testing.T) {
	called := false
	err := Borrow(emptySource{}, nil, func(*Result) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, errNoResult)
	assert.False(t, called)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "img")
	require.NoError(t, os.WriteFile(base+EllipseSuffix, []byte(ellipseFile), 0o644))

	img := image.NewGray(image.Rect(0, 0, 64, 48))
	res, err := Files{Base: base}.Detect(img)
	require.NoError(t, err)
	assert.Len(t, res.Arcs, 3)
	assert.Empty(t, res.Polygons)
	assert.Equal(t, 64, res.Width)
	assert.Equal(t, 48, res.Height)
	assert.NoError(t, res.Release())

	require.NoError(t, os.WriteFile(base+PolygonSuffix, []byte("1 1 2 3\n"), 0o644))
	res, err = Files{Base: base}.Detect(img)
	require.NoError(t, err)
	assert.Len(t, res.Polygons, 1)

	require.NoError(t, os.WriteFile(base+PolygonSuffix, []byte("1 1 2\n"), 0o644))
	_, err = Files{Base: base}.Detect(img)
	assert.ErrorContains(t, err, PolygonSuffix)

	_, err = Files{Base: filepath.Join(dir, "missing")}.Detect(img)
	assert.Error(t, err)
}
