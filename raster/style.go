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
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/pdf/graphics"
)

// Style describes how the Renderer strokes arcs.
type Style struct {
	// Color is an SVG colour keyword, for example "red" or "steelblue".
	Color string `toml:"color"`

	// Thickness is the stroke width in pixels.
	Thickness float64 `toml:"thickness"`

	// Cap and Join are "butt", "round" or "square", and "miter", "round"
	// or "bevel", respectively.
	Cap  string `toml:"cap"`
	Join string `toml:"join"`

	// Flatness is the curve flattening tolerance in pixels.
	Flatness float64 `toml:"flatness"`

	// Logger receives a warning for every record rejected by DrawRaw.
	// If nil, slog.Default() is used.
	Logger *slog.Logger `toml:"-"`
}

// DefaultStyle returns the style of the detector's overlay images:
// red lines, two pixels wide.
func DefaultStyle() *Style {
	return &Style{
		Color:     "red",
		Thickness: 2,
		Cap:       "round",
		Join:      "round",
		Flatness:  defaultFlatness,
	}
}

// LoadStyle reads a style in TOML format, starting from DefaultStyle.
// Unknown keys are an error.
func LoadStyle(r io.Reader) (*Style, error) {
	s := DefaultStyle()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("raster: reading style: %w", err)
	}
	if _, err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

var (
	capStyles = map[string]graphics.LineCapStyle{
		"butt":   graphics.LineCapButt,
		"round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	joinStyles = map[string]graphics.LineJoinStyle{
		"miter": graphics.LineJoinMiter,
		"round": graphics.LineJoinRound,
		"bevel": graphics.LineJoinBevel,
	}
)

// resolved holds the parsed values of a Style.
type resolved struct {
	color color.Color
	cap   graphics.LineCapStyle
	join  graphics.LineJoinStyle
}

func (s *Style) resolve() (*resolved, error) {
	var errs []error
	res := &resolved{}

	c, err := lookupColor(s.Color)
	if err != nil {
		errs = append(errs, err)
	}
	res.color = c

	var ok bool
	if res.cap, ok = capStyles[s.Cap]; !ok {
		errs = append(errs, fmt.Errorf("raster: unknown line cap %q", s.Cap))
	}
	if res.join, ok = joinStyles[s.Join]; !ok {
		errs = append(errs, fmt.Errorf("raster: unknown line join %q", s.Join))
	}
	if !(s.Thickness > 0) {
		errs = append(errs, fmt.Errorf("raster: invalid thickness %g", s.Thickness))
	}
	if !(s.Flatness > 0) {
		errs = append(errs, fmt.Errorf("raster: invalid flatness %g", s.Flatness))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return res, nil
}

// lookupColor resolves an SVG colour keyword.
func lookupColor(name string) (color.Color, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("raster: unknown colour %q", name)
	}
	return c, nil
}

func (s *Style) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
