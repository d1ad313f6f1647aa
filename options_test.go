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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opt := DefaultOptions()
	assert.Equal(t, 2.0, opt.MinEndpointDistance)
	assert.Equal(t, -1, opt.Precision)
	assert.Equal(t, "blue", opt.CircleStroke)
	assert.Equal(t, "red", opt.EllipseStroke)
	assert.Equal(t, "red", opt.ArcStroke)
	assert.Equal(t, "green", opt.PolygonStroke)
	assert.NoError(t, opt.Validate())
}

func TestLoadOptions(t *testing.T) {
	in := `
min_endpoint_distance = 3.5
workers = 4
arc_stroke = "black"
`
	opt, err := LoadOptions(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3.5, opt.MinEndpointDistance)
	assert.Equal(t, 4, opt.Workers)
	assert.Equal(t, "black", opt.ArcStroke)

	// unset keys keep their defaults
	assert.Equal(t, "blue", opt.CircleStroke)
	assert.Equal(t, -1, opt.Precision)
	assert.Equal(t, 1.0, opt.StrokeWidth)
}

func TestLoadOptionsErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"negative distance", "min_endpoint_distance = -1.0", errNegativeDistance},
		{"negative workers", "workers = -2", errNegativeWorkers},
		{"precision", "precision = 18", errPrecision},
		{"empty stroke", `polygon_stroke = ""`, errNoStroke},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadOptions(strings.NewReader(c.in))
			assert.ErrorIs(t, err, c.want)
		})
	}

	_, err := LoadOptions(strings.NewReader("colour = \"red\"\n"))
	assert.ErrorContains(t, err, "reading options")

	_, err = LoadOptions(strings.NewReader("workers = \"many\"\n"))
	assert.Error(t, err)
}

func TestValidateJoinsErrors(t *testing.T) {
	opt := DefaultOptions()
	opt.Workers = -1
	opt.Precision = -3
	err := opt.Validate()
	assert.ErrorIs(t, err, errNegativeWorkers)
	assert.ErrorIs(t, err, errPrecision)
	assert.NotErrorIs(t, err, errNegativeDistance)
}
