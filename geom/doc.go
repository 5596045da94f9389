// Package geom provides the integer plane primitives shared by every other
// beaconzone package: a value-typed Point and the Manhattan (L1) metric.
//
// What:
//
//   - Point is an immutable {X, Y} pair used both as an absolute coordinate
//     and as a displacement vector.
//   - ManhattanDistance(a, b) = |a.X-b.X| + |a.Y-b.Y|.
//
// Why:
//
//   - L1 balls are diamonds; every coverage computation in beaconzone
//     reduces to this metric, so it lives in one place.
//
// Complexity:
//
//   - All operations are O(1) and allocation-free.
package geom
