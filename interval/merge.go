package interval

import (
	"cmp"
	"slices"
)

// Merge returns the minimal disjoint set covering the union of rs, sorted
// by Start. It yields the same set as inserting rs into a Set in any
// order, using one sort and a single sweep instead of the fixpoint loop.
// rs is not modified. Empty ranges are dropped.
//
// Complexity: O(n log n) time, O(n) memory.
func Merge(rs []Range) []Range {
	sorted := make([]Range, 0, len(rs))
	for _, r := range rs {
		if r.End >= r.Start {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	slices.SortFunc(sorted, func(a, b Range) int { return cmp.Compare(a.Start, b.Start) })

	out := sorted[:1]
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if u, ok := last.Union(r); ok {
			*last = u
			continue
		}
		out = append(out, r)
	}
	return out
}

// FirstGap is the slice form of Set.FirstGap for the sorted output of Merge.
func FirstGap(sorted []Range, target Range) (x int, ok bool) {
	return firstGap(sorted, target)
}
