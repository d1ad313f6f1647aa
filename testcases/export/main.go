// Command export writes the arc test cases to testdata: an SVG document
// and a PNG overlay for every case, and a JSON summary for external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/image/draw"
	"seehuhn.de/go/arcpath"
	"seehuhn.de/go/arcpath/raster"
	"seehuhn.de/go/arcpath/svg"
	"seehuhn.de/go/arcpath/testcases"
)

const outDir = "testdata"

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		panic(err)
	}
	rd, err := raster.NewRenderer(nil)
	if err != nil {
		panic(err)
	}
	opt := arcpath.DefaultOptions()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			in := arcpath.Input{
				Width:  tc.Width,
				Height: tc.Height,
				Arcs:   []arcpath.Raw{tc.Arc},
			}
			report := arcpath.Synthesize(in, opt)

			if err := writeSVG(filepath.Join(outDir, name+".svg"), report.Document); err != nil {
				panic(err)
			}
			if err := writePNG(filepath.Join(outDir, name+".png"), rd, tc); err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc, report))
		}
	}

	if err := writeJSON(filepath.Join(outDir, "testcases.json"), out); err != nil {
		panic(err)
	}
}

func writeJSON(fname string, v any) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(v)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeSVG(fname string, doc *svg.Document) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// writePNG draws the arc with the raster renderer, on a white background.
func writePNG(fname string, rd *raster.Renderer, tc testcases.TestCase) error {
	img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	rd.DrawRaw(img, []arcpath.Raw{tc.Arc})

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonTestCase struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Arc     jsonArc `json:"arc"`
	Element string  `json:"element,omitempty"`
	D       string  `json:"d,omitempty"`
	Error   string  `json:"error,omitempty"`
}

type jsonArc struct {
	X1       jsonFloat `json:"x1"`
	Y1       jsonFloat `json:"y1"`
	X2       jsonFloat `json:"x2"`
	Y2       jsonFloat `json:"y2"`
	Width    jsonFloat `json:"width"`
	CX       jsonFloat `json:"cx"`
	CY       jsonFloat `json:"cy"`
	AX       jsonFloat `json:"ax"`
	BX       jsonFloat `json:"bx"`
	Theta    jsonFloat `json:"theta"`
	AngStart jsonFloat `json:"ang_start"`
	AngEnd   jsonFloat `json:"ang_end"`
	Full     bool      `json:"full"`
	Label    int       `json:"label"`
}

// jsonFloat writes non-finite values as the strings "NaN", "+Inf" and
// "-Inf", since JSON has no numbers for these.
type jsonFloat float64

func (x jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.AppendQuote(nil, strconv.FormatFloat(v, 'g', -1, 64)), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func toJSON(name string, tc testcases.TestCase, report *arcpath.Report) jsonTestCase {
	a := tc.Arc
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Arc: jsonArc{
			X1: jsonFloat(a.X1), Y1: jsonFloat(a.Y1),
			X2: jsonFloat(a.X2), Y2: jsonFloat(a.Y2),
			Width: jsonFloat(a.Width),
			CX: jsonFloat(a.CX), CY: jsonFloat(a.CY),
			AX: jsonFloat(a.AX), BX: jsonFloat(a.BX),
			Theta:    jsonFloat(a.Theta),
			AngStart: jsonFloat(a.AngStart),
			AngEnd:   jsonFloat(a.AngEnd),
			Full:     a.Full,
			Label:    a.Label,
		},
	}

	if len(report.Rejected) > 0 {
		jtc.Error = report.Rejected[0].Err.Error()
		return jtc
	}
	el := report.Document.Elements[0]
	jtc.Element = el.Kind()
	if p, ok := el.(*svg.Path); ok {
		jtc.D = p.Arc.String()
	}
	return jtc
}
