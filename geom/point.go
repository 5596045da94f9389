package geom

import "strconv"

// Point is an integer coordinate on the plane. Y grows downward, so Up
// decreases Y and Down increases it.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Up returns p moved d rows toward smaller Y.
func (p Point) Up(d int) Point {
	return Point{X: p.X, Y: p.Y - d}
}

// Down returns p moved d rows toward larger Y.
func (p Point) Down(d int) Point {
	return Point{X: p.X, Y: p.Y + d}
}

// Left returns p moved d columns toward smaller X.
func (p Point) Left(d int) Point {
	return Point{X: p.X - d, Y: p.Y}
}

// Right returns p moved d columns toward larger X.
func (p Point) Right(d int) Point {
	return Point{X: p.X + d, Y: p.Y}
}

// OnRow returns p with its Y replaced by y.
func (p Point) OnRow(y int) Point {
	return Point{X: p.X, Y: y}
}

// DistanceTo is the Manhattan distance from p to q.
func (p Point) DistanceTo(q Point) int {
	return ManhattanDistance(p, q)
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
// Complexity: O(1).
func ManhattanDistance(a, b Point) int {
	return Abs(a.X-b.X) + Abs(a.Y-b.Y)
}

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
