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
)

// ErrInvalidGeometry is matched by all errors reporting a malformed arc
// record.
var ErrInvalidGeometry = errors.New("invalid geometry")

// GeometryError describes why an arc record was rejected.
type GeometryError struct {
	Label  int     // detector label of the record
	Field  string  // name of the offending field
	Value  float64 // value of the offending field
	Reason string
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("arc %d: invalid geometry: %s = %g: %s",
		err.Label, err.Field, err.Value, err.Reason)
}

// Is allows errors.Is(err, ErrInvalidGeometry) to succeed.
func (err *GeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}
