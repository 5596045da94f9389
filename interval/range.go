package interval

import "strconv"

// Range is the closed interval [Start, End]. A Range with End < Start is
// empty; the constructors in this module never produce one.
type Range struct {
	Start, End int
}

// Len returns the number of integers in r, or 0 when r is empty.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// ContainsPoint reports whether Start <= x <= End.
func (r Range) ContainsPoint(x int) bool {
	return r.Start <= x && x <= r.End
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && r.End >= o.End
}

// Overlaps reports whether r and o share at least one integer, including
// full containment in either direction and touching endpoints.
func (r Range) Overlaps(o Range) bool {
	return (r.Start <= o.Start && o.Start <= r.End) ||
		(r.Start <= o.End && o.End <= r.End) ||
		r.Contains(o) ||
		o.Contains(r)
}

// Union returns the hull [min(Start), max(End)] of r and o.
// ok is false, and the zero Range is returned, when they do not overlap.
func (r Range) Union(o Range) (u Range, ok bool) {
	if !r.Overlaps(o) {
		return Range{}, false
	}
	return Range{Start: min(r.Start, o.Start), End: max(r.End, o.End)}, true
}

// String renders r as "start→end".
func (r Range) String() string {
	return strconv.Itoa(r.Start) + "→" + strconv.Itoa(r.End)
}
