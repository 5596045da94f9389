// Package coverage models sensors, their paired beacons, and the diamond
// of cells each sensor rules out.
//
// What:
//
//   - A Pair owns one Sensor and the Beacon it reported. Its Radius is the
//     Manhattan distance between the two, computed from the points on demand.
//   - Pair.Covers is the ground-truth membership test; every enumerator and
//     range in beaconzone agrees with it.
//   - Diamond yields every covered point, row by row, x increasing.
//   - Row yields the covered points of a single row, x increasing.
//   - RangeOnRow returns the same row coverage as one interval.Range.
//
// Invariants:
//
//   - A pair's own beacon sits exactly on the boundary and is covered.
//   - A pair's own sensor is covered (distance 0).
//   - Diamond(c, r) yields 2r²+2r+1 points.
//
// Complexity:
//
//   - Covers, RangeOnRow: O(1).
//   - Diamond: O(r²). Row: O(r).
package coverage
