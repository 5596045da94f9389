// Package occupancy records what is known about individual cells: merely
// covered by a sensor, holding a beacon, or holding a sensor.
//
// Kinds are totally ordered Covered < Beacon < Sensor. When several facts
// land on one cell the highest kind wins and is never downgraded, so the
// final state does not depend on insertion order.
//
// Row is scoped to a single y and answers the exact-count question
// ("how many cells on this row cannot hold the hidden beacon"). Grid is the
// plane-wide variant used for rendering small instances.
package occupancy
