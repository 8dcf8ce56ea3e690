package geom

import "fmt"

// Point is a lattice point. Points are comparable and usable as map keys.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Less orders points by x, then by y.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// Add returns the component-wise sum p + d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// StoredPoint is a point as persisted by a store.
//
// ID is assigned by the store and is only used to address the point for
// deletion. Geometry and equality always go through Point.
type StoredPoint struct {
	ID string `json:"id"`
	Point
}

// Points extracts the coordinates from a slice of stored points.
func Points(stored []StoredPoint) []Point {
	out := make([]Point, len(stored))
	for i, sp := range stored {
		out[i] = sp.Point
	}
	return out
}
