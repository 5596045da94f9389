// Package beaconzone locates a distress beacon hidden among sensors that
// each report only their nearest beacon.
//
// 🚀 What is beaconzone?
//
//	A small, dependency-light engine that reasons about Manhattan-distance
//	sensor coverage on an integer plane:
//		• Geometry: integer points & the L1 metric
//		• Coverage: sensor/beacon pairs, diamond & single-row enumerators
//		• Intervals: closed ranges, fixpoint merge & sort-and-sweep merge
//		• Occupancy: per-cell facts ordered Covered < Beacon < Sensor
//		• Search: exact row counting & gap search over [0,size]²
//
// ✨ Why two strategies?
//
//   - Counting cells on one row needs exactness: sensors and beacons occupy
//     cells that must not be miscounted, so the row is enumerated.
//   - Finding the gap in a 4,000,000 × 4,000,000 domain cannot enumerate
//     cells; rows are merged as intervals and only an incomplete row is
//     scanned.
//
// Under the hood, everything is organized under these subpackages:
//
//	geom/      — Point, ManhattanDistance
//	coverage/  — Sensor, Beacon, Pair, Diamond, Row, RangeOnRow
//	interval/  — Range, Set, Merge
//	occupancy/ — Kind, Row, Grid
//	search/    — ExactCount, CountByIntervals, GapSearch
//	parse/     — sensor report reader
//	render/    — coverage map plotting (gonum/plot)
//
// Quick ASCII example (radius 3, S = sensor, B = its beacon):
//
//	....#....
//	...B##...
//	..#####..
//	.###S###.
//	..#####..
//	...###...
//	....#....
//
// The command in cmd/beaconzone wires the packages to a CLI.
package beaconzone
