// Package shape builds the fixed-size outlines that tiles morph between.
//
// Every outline produced here has the same number of samples and starts at
// the same relative position on its shape, so outlines of different kinds
// can be blended index by index.
package shape

import (
	"math"

	"chosenoffset.com/ripplegrid/internal/core/geom"
)

// Kind identifies one of the three outline shapes.
type Kind int

const (
	Square Kind = iota
	Circle
	Triangle
	kindCount
)

// String returns a readable name for the shape kind.
func (k Kind) String() string {
	switch k {
	case Square:
		return "square"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// squareInset shrinks the square so its footprint matches the circle and
// triangle built at the same radius.
const squareInset = 0.95

// Outline is a closed shape boundary sampled at uniform arclength.
// The closing edge from the last point back to the first is implicit.
type Outline []geom.Point

// Build constructs an outline of the given kind with n samples around the
// origin. Unknown kinds yield an empty outline.
func Build(kind Kind, n int, radius float64) Outline {
	switch kind {
	case Square:
		return buildSquare(n, radius)
	case Circle:
		return buildCircle(n, radius)
	case Triangle:
		return buildTriangle(n, radius)
	default:
		return Outline{}
	}
}

func buildTriangle(n int, radius float64) Outline {
	poly := make([]geom.Point, 0, 4)
	for i := 0; i < 3; i++ {
		ang := -math.Pi/2 + 2*math.Pi*float64(i)/3
		poly = append(poly, geom.Pt(radius*math.Cos(ang), radius*math.Sin(ang)))
	}
	poly = append(poly, poly[0])
	return Resample(poly, n)
}

func buildSquare(n int, radius float64) Outline {
	s := radius * math.Sqrt2 * squareInset
	poly := []geom.Point{
		{X: -s, Y: -s},
		{X: s, Y: -s},
		{X: s, Y: s},
		{X: -s, Y: s},
		{X: -s, Y: -s},
	}
	return Resample(poly, n)
}

func buildCircle(n int, radius float64) Outline {
	if n <= 0 {
		return Outline{}
	}
	out := make(Outline, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geom.Pt(radius*math.Cos(a), radius*math.Sin(a))
	}
	return out
}

// Resample walks a closed polyline (last vertex equal to the first) and emits
// n points spaced perimeter/n apart along it, starting at the first vertex.
// Zero-length segments interpolate with a zero fraction instead of dividing
// by their length.
func Resample(poly []geom.Point, n int) Outline {
	if n <= 0 || len(poly) == 0 {
		return Outline{}
	}
	out := make(Outline, n)
	if len(poly) == 1 {
		for i := range out {
			out[i] = poly[0]
		}
		return out
	}

	var perimeter float64
	for i := 0; i < len(poly)-1; i++ {
		perimeter += geom.Distance(poly[i], poly[i+1])
	}
	step := perimeter / float64(n)

	seg := 0
	walked := 0.0
	for i := range out {
		target := float64(i) * step
		for seg < len(poly)-2 && walked+geom.Distance(poly[seg], poly[seg+1]) < target {
			walked += geom.Distance(poly[seg], poly[seg+1])
			seg++
		}
		a, b := poly[seg], poly[seg+1]
		frac := 0.0
		if l := geom.Distance(a, b); l > 0 {
			frac = (target - walked) / l
		}
		out[i] = geom.Lerp(a, b, frac)
	}
	return out
}

// Blend writes lerp(a[i], b[i], k) * scale for every index into dst and
// returns it. dst is reused when it has enough capacity. Outlines of
// different lengths are blended up to the shorter one.
func Blend(dst []geom.Point, a, b Outline, k, scale float64) []geom.Point {
	n := min(len(a), len(b))
	dst = dst[:0]
	for i := 0; i < n; i++ {
		dst = append(dst, geom.Lerp(a[i], b[i], k).Scale(scale))
	}
	return dst
}

// Library caches the three outlines for one sample count and base radius.
// It is immutable after construction.
type Library struct {
	samples  int
	radius   float64
	outlines [kindCount]Outline
}

// NewLibrary builds and caches square, circle and triangle outlines.
func NewLibrary(samples int, radius float64) *Library {
	lib := &Library{samples: samples, radius: radius}
	for k := Kind(0); k < kindCount; k++ {
		lib.outlines[k] = Build(k, samples, radius)
	}
	return lib
}

// Samples returns the number of points in every cached outline.
func (l *Library) Samples() int {
	return l.samples
}

// Radius returns the base radius the outlines were built at.
func (l *Library) Radius() float64 {
	return l.radius
}

// Outline returns the cached outline for kind. The result must not be modified.
func (l *Library) Outline(kind Kind) Outline {
	if kind < 0 || kind >= kindCount {
		return nil
	}
	return l.outlines[kind]
}

// Blend interpolates between two cached outlines into dst.
func (l *Library) Blend(dst []geom.Point, from, to Kind, k, scale float64) []geom.Point {
	return Blend(dst, l.Outline(from), l.Outline(to), k, scale)
}
