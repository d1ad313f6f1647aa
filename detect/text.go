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
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/arcpath"
	"seehuhn.de/go/geom/vec"
)

// The ELSDc command line tool writes one file per primitive type.
//
// Ellipse files have one arc per line:
//
//	label x1 y1 x2 y2 cx cy ax bx theta ang_start ang_end
//
// Polygon files have one polygon per line, with n vertices:
//
//	label n x1 y1 ... xn yn
const (
	EllipseSuffix = "_out_ellipse.txt"
	PolygonSuffix = "_out_polygon.txt"
)

// SyntaxError describes a malformed line in a detector output file.
type SyntaxError struct {
	Line int // 1-based
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("detect: line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

var (
	errFieldCount = errors.New("wrong number of fields")
	errVertices   = errors.New("invalid vertex count")
)

// scanLines calls fn for every non-empty line of r, with the line split
// into fields.
func scanLines(r io.Reader, fn func(fields []string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<24)
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(fields); err != nil {
			return &SyntaxError{Line: line, Err: err}
		}
	}
	return s.Err()
}

func parseFloats(fields []string) ([]float64, error) {
	res := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// ReadEllipses reads an ELSDc ellipse file.  The files carry no full-curve
// flag and no stroke widths, so these fields are left zero.
func ReadEllipses(r io.Reader) ([]arcpath.Raw, error) {
	var res []arcpath.Raw
	err := scanLines(r, func(fields []string) error {
		if len(fields) != 12 {
			return fmt.Errorf("%w: got %d, want 12", errFieldCount, len(fields))
		}
		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		v, err := parseFloats(fields[1:])
		if err != nil {
			return err
		}
		res = append(res, arcpath.Raw{
			X1: v[0], Y1: v[1], X2: v[2], Y2: v[3],
			CX: v[4], CY: v[5],
			AX: v[6], BX: v[7],
			Theta:    v[8],
			AngStart: v[9],
			AngEnd:   v[10],
			Label:    label,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WriteEllipses writes arcs in the ELSDc ellipse file format.  Numbers
// are written with six digits after the decimal point.
func WriteEllipses(w io.Writer, arcs []arcpath.Raw) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, a := range arcs {
		buf = strconv.AppendInt(buf[:0], int64(a.Label), 10)
		buf = append(buf, ' ')
		for _, x := range []float64{a.X1, a.Y1, a.X2, a.Y2, a.CX, a.CY, a.AX, a.BX, a.Theta, a.AngStart, a.AngEnd} {
			buf = strconv.AppendFloat(buf, x, 'f', 6, 64)
			buf = append(buf, ' ')
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPolygons reads an ELSDc polygon file.
func ReadPolygons(r io.Reader) ([]arcpath.Polygon, error) {
	var res []arcpath.Polygon
	err := scanLines(r, func(fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("%w: got %d, want at least 2", errFieldCount, len(fields))
		}
		label, err := strconv.Atoi(fields[0])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: %d", errVertices, n)
		}
		if len(fields) != 2+2*n {
			return fmt.Errorf("%w: got %d, want %d", errFieldCount, len(fields), 2+2*n)
		}
		v, err := parseFloats(fields[2:])
		if err != nil {
			return err
		}
		pts := make([]vec.Vec2, n)
		for i := range pts {
			pts[i] = vec.Vec2{X: v[2*i], Y: v[2*i+1]}
		}
		res = append(res, arcpath.Polygon{Points: pts, Label: label})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// WritePolygons writes polygons in the ELSDc polygon file format.
func WritePolygons(w io.Writer, polys []arcpath.Polygon) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, p := range polys {
		buf = strconv.AppendInt(buf[:0], int64(p.Label), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(len(p.Points)), 10)
		buf = append(buf, ' ')
		for _, pt := range p.Points {
			buf = strconv.AppendFloat(buf, pt.X, 'f', 6, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, pt.Y, 'f', 6, 64)
			buf = append(buf, ' ')
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Files is a Source which reads the output files of an earlier ELSDc
// run, named Base+EllipseSuffix and Base+PolygonSuffix.  A missing
// polygon file means that no polygons were found.
type Files struct {
	Base string
}

// Detect implements Source.  The image is only used for its size.
func (f Files) Detect(img *image.Gray) (*Result, error) {
	arcs, err := readFile(f.Base+EllipseSuffix, ReadEllipses)
	if err != nil {
		return nil, err
	}
	polys, err := readFile(f.Base+PolygonSuffix, ReadPolygons)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	b := img.Bounds()
	in := arcpath.Input{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Arcs:     arcs,
		Polygons: polys,
	}
	return NewResult(in, nil, nil), nil
}

func readFile[T any](name string, read func(io.Reader) ([]T, error)) (res []T, err error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	res, err = read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}
