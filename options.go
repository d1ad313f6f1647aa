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

package arcpath

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
)

// Options control the synthesis of vector paths.
//
// Options can be read from a TOML file using LoadOptions.  Keys which are
// not set in the file keep their default values.
type Options struct {
	// MinEndpointDistance is the distance in pixels at or below which the
	// two end points of an arc count as coincident.
	MinEndpointDistance float64 `toml:"min_endpoint_distance"`

	// Workers limits the number of records processed concurrently.
	// Zero means one worker per CPU.
	Workers int `toml:"workers"`

	// Precision is the number of digits after the decimal point in the
	// SVG output, or -1 for the shortest exact representation.
	Precision int `toml:"precision"`

	CircleStroke  string  `toml:"circle_stroke"`
	EllipseStroke string  `toml:"ellipse_stroke"`
	ArcStroke     string  `toml:"arc_stroke"`
	PolygonStroke string  `toml:"polygon_stroke"`
	StrokeWidth   float64 `toml:"stroke_width"`

	// Logger receives a warning for every rejected record.
	// If nil, slog.Default() is used.
	Logger *slog.Logger `toml:"-"`
}

// DefaultOptions returns the options used when nil Options are passed.
func DefaultOptions() *Options {
	return &Options{
		MinEndpointDistance: DefaultMinEndpointDistance,
		Precision:           -1,
		CircleStroke:        "blue",
		EllipseStroke:       "red",
		ArcStroke:           "red",
		PolygonStroke:       "green",
		StrokeWidth:         1,
	}
}

// LoadOptions reads options in TOML format.  Unknown keys are an error.
func LoadOptions(r io.Reader) (*Options, error) {
	opt := DefaultOptions()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(opt); err != nil {
		return nil, fmt.Errorf("arcpath: reading options: %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

var (
	errNegativeDistance = errors.New("arcpath: min_endpoint_distance must not be negative")
	errNegativeWorkers  = errors.New("arcpath: workers must not be negative")
	errPrecision        = errors.New("arcpath: precision must be -1 or between 0 and 17")
	errNoStroke         = errors.New("arcpath: stroke colours must not be empty")
)

// Validate checks the options for consistency.
func (opt *Options) Validate() error {
	var errs []error
	if opt.MinEndpointDistance < 0 {
		errs = append(errs, errNegativeDistance)
	}
	if opt.Workers < 0 {
		errs = append(errs, errNegativeWorkers)
	}
	if opt.Precision < -1 || opt.Precision > 17 {
		errs = append(errs, errPrecision)
	}
	if opt.CircleStroke == "" || opt.EllipseStroke == "" || opt.ArcStroke == "" || opt.PolygonStroke == "" {
		errs = append(errs, errNoStroke)
	}
	return errors.Join(errs...)
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}
	return slog.Default()
}
