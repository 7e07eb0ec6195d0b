package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

// Pair is one digitized correspondence: where a mark sat on the undistorted
// sheet (Before) and where it was found on the scan (After).
type Pair struct {
	Before Point
	After  Point

	// HasAfter is false until the second input section supplies After.
	HasAfter bool
}

type Rectangle struct {
	Min Point
	Max Point
}

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Scale returns the point scaled by the given factor f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Width and Height of an empty rectangle are zero.
func (r Rectangle) Width() float64  { return r.Max.X - r.Min.X }
func (r Rectangle) Height() float64 { return r.Max.Y - r.Min.Y }

// Bounds returns the smallest rectangle containing every point.
// The zero Rectangle is returned for an empty slice.
func Bounds(points []Point) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}
	r := Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Befores returns the Before coordinate of every pair, in order.
func Befores(pairs []Pair) []Point {
	points := make([]Point, len(pairs))
	for i, p := range pairs {
		points[i] = p.Before
	}
	return points
}
