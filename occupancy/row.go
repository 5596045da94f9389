package occupancy

import "github.com/katalvlaran/beaconzone/geom"

// Row maps x-coordinates of one fixed row to their strongest known Kind.
type Row struct {
	y     int
	cells map[int]Kind
}

// NewRow returns an empty Row tracking y.
func NewRow(y int) *Row {
	return &Row{y: y, cells: make(map[int]Kind)}
}

// Y returns the tracked row.
func (r *Row) Y() int {
	return r.y
}

// Insert records k at p. Points off the tracked row are ignored; an
// existing higher-priority kind is kept.
func (r *Row) Insert(p geom.Point, k Kind) {
	if p.Y != r.y {
		return
	}
	if prev, ok := r.cells[p.X]; ok {
		k = Merge(prev, k)
	}
	r.cells[p.X] = k
}

// Kind returns the kind stored at x and whether anything is stored.
func (r *Row) Kind(x int) (Kind, bool) {
	k, ok := r.cells[x]
	return k, ok
}

// Len returns the number of distinct cells recorded.
func (r *Row) Len() int {
	return len(r.cells)
}

// CountExcluding returns the number of cells whose kind is not k.
func (r *Row) CountExcluding(k Kind) int {
	n := 0
	for _, v := range r.cells {
		if v != k {
			n++
		}
	}
	return n
}

// NonBeaconCount returns the number of cells that cannot hold the hidden
// beacon: every recorded cell except those holding a known beacon.
func (r *Row) NonBeaconCount() int {
	return r.CountExcluding(Beacon)
}
