package poisson

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Point is a position in the sampling area.
type Point = r2.Point

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between a & b
func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// domain returns the closed rectangle [0,w] x [0,h]
func domain(w, h float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: w},
		Y: r1.Interval{Lo: 0, Hi: h},
	}
}

// polar returns the vector of length m in direction theta (radians)
func polar(theta, m float64) Point {
	return Point{X: math.Cos(theta), Y: math.Sin(theta)}.Mul(m)
}
