package occupancy

import (
	"iter"
	"strings"

	"github.com/katalvlaran/beaconzone/geom"
)

// Grid maps arbitrary points to their strongest known Kind.
type Grid struct {
	cells    map[geom.Point]Kind
	min, max geom.Point
}

// NewGrid returns an empty Grid.
func NewGrid() *Grid {
	return &Grid{cells: make(map[geom.Point]Kind)}
}

// Insert records k at p, keeping any higher-priority kind already there.
func (g *Grid) Insert(p geom.Point, k Kind) {
	prev, ok := g.cells[p]
	if ok {
		g.cells[p] = Merge(prev, k)
		return
	}
	if len(g.cells) == 0 {
		g.min, g.max = p, p
	} else {
		g.min = geom.Point{X: min(g.min.X, p.X), Y: min(g.min.Y, p.Y)}
		g.max = geom.Point{X: max(g.max.X, p.X), Y: max(g.max.Y, p.Y)}
	}
	g.cells[p] = k
}

// Kind returns the kind stored at p and whether anything is stored.
func (g *Grid) Kind(p geom.Point) (Kind, bool) {
	k, ok := g.cells[p]
	return k, ok
}

// Len returns the number of distinct cells recorded.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Bounds returns the top-left and bottom-right corners of the recorded
// cells. ok is false for an empty grid.
func (g *Grid) Bounds() (lo, hi geom.Point, ok bool) {
	return g.min, g.max, len(g.cells) > 0
}

// Cells yields every recorded cell with its kind, in no particular order.
func (g *Grid) Cells() iter.Seq2[geom.Point, Kind] {
	return func(yield func(geom.Point, Kind) bool) {
		for p, k := range g.cells {
			if !yield(p, k) {
				return
			}
		}
	}
}

// Row returns the cells of row y as a Row.
func (g *Grid) Row(y int) *Row {
	r := NewRow(y)
	for p, k := range g.cells {
		r.Insert(p, k)
	}
	return r
}

// String draws the bounding box of the grid, one line per row, using
// Kind.Glyph for recorded cells and '.' elsewhere.
func (g *Grid) String() string {
	lo, hi, ok := g.Bounds()
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.Grow((hi.X - lo.X + 2) * (hi.Y - lo.Y + 1))
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if k, ok := g.cells[geom.Point{X: x, Y: y}]; ok {
				sb.WriteByte(k.Glyph())
				continue
			}
			sb.WriteByte('.')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
