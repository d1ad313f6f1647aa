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
	"runtime"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/arcpath/svg"
)

// Input is the output of one detector run.
//
// The synthesizer only reads the slices, and is done with them when
// Synthesize returns.
type Input struct {
	Width, Height int // size of the source image, in pixels
	Arcs          []Raw
	Polygons      []Polygon
}

// Rejection records an arc which could not be converted.
type Rejection struct {
	Index int // position in Input.Arcs
	Label int
	Err   error
}

// Report is the result of Synthesize.
type Report struct {
	Document *svg.Document
	Rejected []Rejection
}

// Synthesize converts all arcs and polygons of a detector run into an SVG
// document.
//
// Arcs are converted concurrently, but the document lists the elements in
// input order: first the arcs, then the polygons.  Invalid arc records are
// left out of the document and listed in the report; they do not stop
// the conversion of the remaining records.  If opt is nil, DefaultOptions
// are used.  Options which fail Validate are logged and replaced by
// DefaultOptions, keeping only the Logger.
func Synthesize(in Input, opt *Options) *Report {
	opt = effectiveOptions(opt)
	log := opt.logger()

	elems := make([]svg.Element, len(in.Arcs))
	errs := make([]error, len(in.Arcs))

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range in.Arcs {
		g.Go(func() error {
			rec, err := NewRecord(in.Arcs[i])
			if err != nil {
				errs[i] = err
				return nil
			}
			elems[i] = opt.Element(rec)
			return nil
		})
	}
	_ = g.Wait() // the workers never fail

	doc := svg.New(in.Width, in.Height)
	doc.Precision = opt.Precision
	report := &Report{Document: doc}
	for i, el := range elems {
		if errs[i] != nil {
			label := in.Arcs[i].Label
			log.Warn("arc rejected", "index", i, "label", label, "err", errs[i])
			report.Rejected = append(report.Rejected, Rejection{Index: i, Label: label, Err: errs[i]})
			continue
		}
		doc.Append(el)
	}
	for _, poly := range in.Polygons {
		doc.Append(opt.PolygonElement(poly))
	}

	log.Debug("arcs converted",
		"arcs", len(in.Arcs),
		"polygons", len(in.Polygons),
		"rejected", len(report.Rejected))
	return report
}

func effectiveOptions(opt *Options) *Options {
	if opt == nil {
		return DefaultOptions()
	}
	err := opt.Validate()
	if err == nil {
		return opt
	}
	opt.logger().Warn("invalid options, using defaults", "err", err)
	def := DefaultOptions()
	def.Logger = opt.Logger
	return def
}
