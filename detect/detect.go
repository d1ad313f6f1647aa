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

// Package detect connects the synthesizer to an arc detector.
//
// A detector is any implementation of Source.  Detection results may live
// in memory owned by the detector; Borrow makes sure that they are
// released after use, and SynthesizeFrom converts them before they are
// released.  The package also reads and writes the plain text files
// produced by the ELSDc command line tool.
package detect

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"seehuhn.de/go/arcpath"
)

// Source runs an arc detector on a grey scale image.
type Source interface {
	Detect(img *image.Gray) (*Result, error)
}

// Result is the output of one detector run.
//
// The slices in Result, and the label image, may refer to memory owned by
// the detector.  They must not be used after Release has been called.
type Result struct {
	arcpath.Input

	// Labels marks the pixels supporting each detected primitive with
	// the primitive's label.  Labels may be nil.
	Labels *LabelImage

	once       sync.Once
	release    func() error
	releaseErr error
}

// NewResult bundles the output of a detector run.  The function release
// is called at most once, by Release, and may be nil.
func NewResult(in arcpath.Input, labels *LabelImage, release func() error) *Result {
	return &Result{Input: in, Labels: labels, release: release}
}

// Release gives the memory of the result back to the detector.  Calling
// Release more than once has no further effect; every call returns the
// error of the first call.
func (r *Result) Release() error {
	r.once.Do(func() {
		if r.release != nil {
			r.releaseErr = r.release()
		}
	})
	return r.releaseErr
}

// Borrow runs the detector and calls fn with the result.  The result is
// released when fn returns, also if fn panics.  Errors from fn and from
// releasing the result are both reported.
func Borrow(src Source, img *image.Gray, fn func(*Result) error) (err error) {
	res, err := src.Detect(img)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	if res == nil {
		return errNoResult
	}
	defer func() {
		err = errors.Join(err, res.Release())
	}()
	return fn(res)
}

// Detection is a detector run converted into a document.
type Detection struct {
	*arcpath.Report

	// Labels is a copy of the detector's label image, or nil if the
	// detector did not provide one.
	Labels *LabelImage
}

// SynthesizeFrom runs the detector on img and converts the result into a
// document.  The returned value does not refer to detector memory.
func SynthesizeFrom(src Source, img *image.Gray, opt *arcpath.Options) (*Detection, error) {
	var det *Detection
	err := Borrow(src, img, func(res *Result) error {
		det = &Detection{
			Report: arcpath.Synthesize(res.Input, opt),
			Labels: res.Labels.Clone(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return det, nil
}

var errNoResult = errors.New("detect: detector returned no result")

// Static is a Source which returns fixed data, independent of the image.
// Each call to Detect returns a fresh Result for the same data.
type Static struct {
	Input  arcpath.Input
	Labels *LabelImage

	// OnRelease, if not nil, is called when a result is released.
	OnRelease func() error
}

// Detect implements Source.
func (s *Static) Detect(*image.Gray) (*Result, error) {
	return NewResult(s.Input, s.Labels, s.OnRelease), nil
}
