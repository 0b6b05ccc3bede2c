package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
)

// Based on https://github.com/kellydunn/golang-geo/blob/master/polygon.go

// Polygon is a closed outline, the last point joins back to the first.
type Polygon struct {
	Points []r2.Point
}

// NewPolygon returns a Polygon made of the given points, in order.
func NewPolygon(points []r2.Point) *Polygon {
	return &Polygon{Points: points}
}

// IsClosed returns whether the polygon has enough points to enclose anything.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Contains returns whether the polygon contains pt (ray casting).
func (p *Polygon) Contains(pt r2.Point) bool {
	if !p.IsClosed() {
		return false
	}

	contains := p.intersectsWithRaycast(pt, p.Points[len(p.Points)-1], p.Points[0])
	for i := 1; i < len(p.Points); i++ {
		if p.intersectsWithRaycast(pt, p.Points[i-1], p.Points[i]) {
			contains = !contains
		}
	}
	return contains
}

// intersectsWithRaycast returns whether a ray cast from pt in the +x
// direction crosses the edge start->end.
// http://rosettacode.org/wiki/Ray-casting_algorithm#Go
func (p *Polygon) intersectsWithRaycast(pt, start, end r2.Point) bool {
	if start.Y > end.Y {
		start, end = end, start
	}

	// nudge the ray off of vertices
	for pt.Y == start.Y || pt.Y == end.Y {
		pt.Y = math.Nextafter(pt.Y, math.Inf(1))
	}

	if pt.Y < start.Y || pt.Y > end.Y {
		return false
	}

	if start.X > end.X {
		if pt.X > start.X {
			return false
		}
		if pt.X < end.X {
			return true
		}
	} else {
		if pt.X > end.X {
			return false
		}
		if pt.X < start.X {
			return true
		}
	}

	raySlope := (pt.Y - start.Y) / (pt.X - start.X)
	diagSlope := (end.Y - start.Y) / (end.X - start.X)

	return raySlope >= diagSlope
}
