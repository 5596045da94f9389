package coverage

import (
	"fmt"

	"github.com/katalvlaran/beaconzone/geom"
	"github.com/katalvlaran/beaconzone/interval"
)

// DefaultFrequencyMultiplier is the X scale of the puzzle's tuning frequency.
const DefaultFrequencyMultiplier int64 = 4_000_000

// Sensor is the position of a sensor.
type Sensor struct {
	geom.Point
}

// Beacon is the position of a beacon.
type Beacon struct {
	geom.Point
}

// DistanceToBeacon is the Manhattan distance from s to b.
func (s Sensor) DistanceToBeacon(b Beacon) int {
	return s.DistanceTo(b.Point)
}

// TuningFrequency encodes b as X*multiplier + Y in int64, so coordinates
// up to 4,000,000 scaled by 4,000,000 do not wrap.
func (b Beacon) TuningFrequency(multiplier int64) int64 {
	return int64(b.X)*multiplier + int64(b.Y)
}

// Pair associates a sensor with the closest beacon it detected.
// The coverage radius always follows the two points, so a literal Pair or
// one whose Beacon is reassigned still covers its own beacon.
type Pair struct {
	Sensor Sensor
	Beacon Beacon
}

// NewPair builds a Pair from a sensor and its closest beacon.
func NewPair(sensor, beacon geom.Point) Pair {
	return Pair{Sensor: Sensor{sensor}, Beacon: Beacon{beacon}}
}

// Radius is the Manhattan distance from the sensor to its beacon.
func (p Pair) Radius() int {
	return p.Sensor.DistanceToBeacon(p.Beacon)
}

// Covers reports whether p is within the pair's radius (inclusive).
func (p Pair) Covers(q geom.Point) bool {
	return p.Sensor.DistanceTo(q) <= p.Radius()
}

// Reach returns the half-width of coverage on row y, or a negative value
// when y is out of reach.
func (p Pair) Reach(y int) int {
	return p.Radius() - geom.Abs(y-p.Sensor.Y)
}

// RangeOnRow returns the x-interval covered on row y.
// ok is false when y is farther than Radius from the sensor.
func (p Pair) RangeOnRow(y int) (r interval.Range, ok bool) {
	half := p.Reach(y)
	if half < 0 {
		return interval.Range{}, false
	}
	return interval.Range{Start: p.Sensor.X - half, End: p.Sensor.X + half}, true
}

// Rows returns the inclusive span of rows the pair covers.
func (p Pair) Rows() interval.Range {
	r := p.Radius()
	return interval.Range{Start: p.Sensor.Y - r, End: p.Sensor.Y + r}
}

// String renders the pair in the sensor report format.
func (p Pair) String() string {
	return fmt.Sprintf("Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
		p.Sensor.X, p.Sensor.Y, p.Beacon.X, p.Beacon.Y)
}

// AnyCovers reports whether some pair in pairs covers q.
func AnyCovers(pairs []Pair, q geom.Point) bool {
	for _, p := range pairs {
		if p.Covers(q) {
			return true
		}
	}
	return false
}
