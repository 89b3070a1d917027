// Package geom holds the 2D value types shared by the grid core.
package geom

import "math"

// Point represents a 2D point in pixel space
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Lerp interpolates between a and b. The a*(1-t)+b*t form returns the
// endpoints exactly at t=0 and t=1.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X*(1-t) + b.X*t,
		Y: a.Y*(1-t) + b.Y*t,
	}
}
