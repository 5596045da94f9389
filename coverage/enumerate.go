package coverage

import (
	"iter"

	"github.com/katalvlaran/beaconzone/geom"
)

// Diamond yields every point within Manhattan distance radius of center,
// from row center.Y-radius down to center.Y+radius, x increasing within a
// row. A negative radius yields nothing.
//
// Complexity: O(radius²) points, O(1) memory.
func Diamond(center geom.Point, radius int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			half := radius - geom.Abs(y-center.Y)
			for x := center.X - half; x <= center.X+half; x++ {
				if !yield(geom.Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Row yields the points of row y within radius of center, x increasing.
// It yields nothing when |y-center.Y| > radius.
//
// Complexity: O(radius) points, O(1) memory.
func Row(center geom.Point, radius, y int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		half := radius - geom.Abs(y-center.Y)
		for x := center.X - half; x <= center.X+half; x++ {
			if !yield(geom.Point{X: x, Y: y}) {
				return
			}
		}
	}
}

// Diamond yields every point the pair covers.
func (p Pair) Diamond() iter.Seq[geom.Point] {
	return Diamond(p.Sensor.Point, p.Radius())
}

// Row yields the points the pair covers on row y.
func (p Pair) Row(y int) iter.Seq[geom.Point] {
	return Row(p.Sensor.Point, p.Radius(), y)
}

// DiamondSize is the number of points Diamond yields for radius r.
func DiamondSize(r int) int {
	if r < 0 {
		return 0
	}
	return 2*r*r + 2*r + 1
}
