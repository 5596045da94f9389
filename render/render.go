// Package render draws the coverage map of small sensor instances with
// gonum/plot: every cell of every diamond, the sensors and beacons on top,
// and optionally the located gap.
//
// Diamonds are enumerated cell by cell, so rendering is only meant for
// worked examples; Options.MaxCells guards against full-scale inputs.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/geom"
	"github.com/katalvlaran/beaconzone/occupancy"
)

// ErrTooLarge indicates the diamonds hold more cells than Options.MaxCells.
var ErrTooLarge = errors.New("render: instance too large to enumerate")

// Options configures Plot and Save.
type Options struct {
	// Title is the plot title.
	Title string
	// Gap, if non-nil, is highlighted on the map.
	Gap *geom.Point
	// MaxCells bounds the total diamond area enumerated.
	MaxCells int
	// Width and Height are the saved image dimensions.
	Width, Height vg.Length
}

// DefaultOptions returns Options for a 6×6 inch map of at most 250,000 cells.
func DefaultOptions() Options {
	return Options{
		Title:    "Sensor coverage",
		MaxCells: 250_000,
		Width:    6 * vg.Inch,
		Height:   6 * vg.Inch,
	}
}

// Grid fills an occupancy.Grid with every diamond cell, sensor and beacon.
// It returns ErrTooLarge when the summed diamond sizes exceed maxCells.
func Grid(pairs []coverage.Pair, maxCells int) (*occupancy.Grid, error) {
	total := 0
	for _, p := range pairs {
		total += coverage.DiamondSize(p.Radius())
		if total > maxCells {
			return nil, fmt.Errorf("%w: more than %d cells", ErrTooLarge, maxCells)
		}
	}
	g := occupancy.NewGrid()
	for _, p := range pairs {
		for pt := range p.Diamond() {
			g.Insert(pt, occupancy.Covered)
		}
		g.Insert(p.Sensor.Point, occupancy.Sensor)
		g.Insert(p.Beacon.Point, occupancy.Beacon)
	}
	return g, nil
}

// layer is one scatter series of the map.
type layer struct {
	label string
	kind  occupancy.Kind
	color color.Color
	shape draw.GlyphDrawer
	size  vg.Length
}

var layers = []layer{
	{"covered", occupancy.Covered, color.RGBA{R: 160, G: 190, B: 230, A: 255}, draw.BoxGlyph{}, vg.Points(2)},
	{"beacon", occupancy.Beacon, color.RGBA{R: 40, G: 140, B: 60, A: 255}, draw.CircleGlyph{}, vg.Points(3)},
	{"sensor", occupancy.Sensor, color.RGBA{R: 200, G: 40, B: 40, A: 255}, draw.TriangleGlyph{}, vg.Points(3)},
}

// Plot builds the coverage map. Y grows downward to match the input.
func Plot(pairs []coverage.Pair, opts Options) (*plot.Plot, error) {
	g, err := Grid(pairs, opts.MaxCells)
	if err != nil {
		return nil, err
	}

	byKind := make(map[occupancy.Kind]plotter.XYs, len(layers))
	for pt, k := range g.Cells() {
		byKind[k] = append(byKind[k], plotter.XY{X: float64(pt.X), Y: float64(pt.Y)})
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	for _, l := range layers {
		pts := byKind[l.kind]
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("render: %s layer: %w", l.label, err)
		}
		sc.GlyphStyle.Color = l.color
		sc.GlyphStyle.Shape = l.shape
		sc.GlyphStyle.Radius = l.size
		p.Add(sc)
		p.Legend.Add(l.label, sc)
	}

	if opts.Gap != nil {
		sc, err := plotter.NewScatter(plotter.XYs{{X: float64(opts.Gap.X), Y: float64(opts.Gap.Y)}})
		if err != nil {
			return nil, fmt.Errorf("render: gap layer: %w", err)
		}
		sc.GlyphStyle.Color = color.Black
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Radius = vg.Points(5)
		p.Add(sc)
		p.Legend.Add("gap "+opts.Gap.String(), sc)
	}
	return p, nil
}

// Save renders the map to path; the extension (.png, .svg, .pdf, ...)
// selects the format.
func Save(pairs []coverage.Pair, path string, opts Options) error {
	p, err := Plot(pairs, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
