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

import "slices"

// LabelImage records which pixels support which detected primitive.
// Pixels not supporting any primitive have label 0.
type LabelImage struct {
	Width, Height int
	Pix           []int32 // row-major, Width*Height values
}

// NewLabelImage allocates an empty label image.
func NewLabelImage(width, height int) *LabelImage {
	return &LabelImage{
		Width:  width,
		Height: height,
		Pix:    make([]int32, width*height),
	}
}

// Clone returns a copy of l which shares no memory with l.
// Clone of a nil image is nil.
func (l *LabelImage) Clone() *LabelImage {
	if l == nil {
		return nil
	}
	return &LabelImage{
		Width:  l.Width,
		Height: l.Height,
		Pix:    slices.Clone(l.Pix),
	}
}

// At returns the label of pixel (x, y), or 0 outside the image.
func (l *LabelImage) At(x, y int) int32 {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	return l.Pix[y*l.Width+x]
}

// Set changes the label of pixel (x, y).  Pixels outside the image are
// ignored.
func (l *LabelImage) Set(x, y int, label int32) {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return
	}
	l.Pix[y*l.Width+x] = label
}

// Count returns the number of pixels carrying the given label.
func (l *LabelImage) Count(label int32) int {
	n := 0
	for _, v := range l.Pix {
		if v == label {
			n++
		}
	}
	return n
}
