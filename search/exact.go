package search

import (
	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/interval"
	"github.com/katalvlaran/beaconzone/occupancy"
)

// ExactCount returns how many cells of row cannot hold the hidden beacon.
//
// Steps:
//  1. Create an occupancy.Row for row.
//  2. For every pair mark its sensor Sensor, its beacon Beacon, and every
//     point of its row-restricted coverage Covered.
//  3. Count the cells not marked Beacon.
//
// Complexity: O(Σ covered cells on row) time and memory.
func ExactCount(pairs []coverage.Pair, row int) int {
	grid := occupancy.NewRow(row)
	for _, p := range pairs {
		grid.Insert(p.Sensor.Point, occupancy.Sensor)
		grid.Insert(p.Beacon.Point, occupancy.Beacon)
		for pt := range p.Row(row) {
			grid.Insert(pt, occupancy.Covered)
		}
	}
	return grid.NonBeaconCount()
}

// CountByIntervals returns the same count as ExactCount using merged row
// ranges instead of individual cells. Every sensor and beacon lies inside
// its own pair's coverage, so the count is the covered length minus the
// distinct beacon cells on row that no sensor also occupies.
//
// Complexity: O(n²) for n pairs, independent of the radii.
func CountByIntervals(pairs []coverage.Pair, row int) int {
	set := interval.NewSet(len(pairs))
	sensors := make(map[int]struct{})
	beacons := make(map[int]struct{})
	for _, p := range pairs {
		if r, ok := p.RangeOnRow(row); ok {
			set.Insert(r)
		}
		if p.Sensor.Y == row {
			sensors[p.Sensor.X] = struct{}{}
		}
		if p.Beacon.Y == row {
			beacons[p.Beacon.X] = struct{}{}
		}
	}
	excluded := 0
	for x := range beacons {
		if _, ok := sensors[x]; !ok {
			excluded++
		}
	}
	return set.Total() - excluded
}
