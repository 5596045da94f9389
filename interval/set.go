package interval

import (
	"cmp"
	"slices"
)

// Set holds pairwise-disjoint ranges whose union equals the union of
// everything inserted so far. The zero value is an empty, usable Set.
type Set struct {
	ranges []Range
}

// NewSet returns an empty Set with room for capacity ranges.
func NewSet(capacity int) *Set {
	return &Set{ranges: make([]Range, 0, capacity)}
}

// Insert adds r to the set.
//
// Steps:
//  1. current = r.
//  2. Partition the stored ranges into those overlapping current and the
//     rest; fold every overlapping range into current.
//  3. If anything was folded, repeat step 2: the grown hull may now reach
//     a range it missed before.
//  4. Store current.
//
// Complexity: O(k) per pass over k stored ranges.
func (s *Set) Insert(r Range) {
	if r.End < r.Start {
		return
	}
	current := r
	for {
		combined := false
		kept := s.ranges[:0]
		for _, existing := range s.ranges {
			if u, ok := current.Union(existing); ok {
				current = u
				combined = true
				continue
			}
			kept = append(kept, existing)
		}
		s.ranges = kept
		if !combined {
			break
		}
	}
	s.ranges = append(s.ranges, current)
}

// Len returns the number of disjoint ranges currently stored.
func (s *Set) Len() int {
	return len(s.ranges)
}

// List drains the set and returns its ranges in no particular order.
// The Set is empty afterwards.
func (s *Set) List() []Range {
	out := s.ranges
	s.ranges = nil
	return out
}

// Sorted returns a copy of the stored ranges ordered by Start.
func (s *Set) Sorted() []Range {
	out := slices.Clone(s.ranges)
	slices.SortFunc(out, func(a, b Range) int { return cmp.Compare(a.Start, b.Start) })
	return out
}

// Covers reports whether the set is a single range containing target.
// This is the fast-path test of the gap search.
func (s *Set) Covers(target Range) bool {
	return len(s.ranges) == 1 && s.ranges[0].Contains(target)
}

// Total returns the number of integers covered by the set.
func (s *Set) Total() int {
	total := 0
	for _, r := range s.ranges {
		total += r.Len()
	}
	return total
}

// FirstGap returns the smallest x in target not covered by any stored range.
// ok is false when target is fully covered.
// Complexity: O(k log k) for k stored ranges.
func (s *Set) FirstGap(target Range) (x int, ok bool) {
	return firstGap(s.Sorted(), target)
}

// firstGap walks sorted disjoint ranges looking for the first integer of
// target they leave uncovered.
func firstGap(sorted []Range, target Range) (int, bool) {
	if target.End < target.Start {
		return 0, false
	}
	next := target.Start
	for _, r := range sorted {
		if r.End < next {
			continue
		}
		if r.Start > next {
			break
		}
		next = r.End + 1
		if next > target.End {
			return 0, false
		}
	}
	return next, true
}
