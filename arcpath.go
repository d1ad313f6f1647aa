// Package arcpath turns elliptical arcs found by a curve detector into
// vector path elements.
//
// Each arc is reported as an ellipse (center, semi-axes, rotation) plus the
// two end points of the arc.  An ellipse and two points on it admit four
// arcs; the synthesizer picks the one the detector meant and writes it as
// an SVG elliptical arc command, or as a closed circle or ellipse if the
// arc covers (almost) the whole curve.
package arcpath

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
