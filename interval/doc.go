// Package interval implements closed integer intervals on an implicit row
// and a tracker that keeps their union as a minimal disjoint set.
//
// What:
//
//   - Range is a closed interval [Start, End] of x-coordinates.
//   - Overlaps treats shared endpoints as overlap; Union is defined only
//     for overlapping ranges and returns their min/max hull.
//   - Set accepts ranges one at a time and re-merges on every Insert until
//     no stored range overlaps the incoming one (fixpoint merge).
//   - Merge is a sort-and-sweep alternative with identical output.
//
// Complexity:
//
//   - Set.Insert: O(k) per pass over k stored ranges, O(n²) across n inserts.
//   - Merge:      O(n log n) time, O(n) memory.
//
// A Set is meant to be built fresh per row and thrown away; it is not
// safe for concurrent use.
package interval
