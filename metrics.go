package poisson

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
)

// Metrics holds general information about a set of points
type Metrics struct {
	// Count of points
	Count int

	// MinDistance is the distance between the closest pair of points.
	// For a well behaved Sampler this is never below Radius.
	// Zero if there are fewer than two points.
	MinDistance float64

	// MeanNearest is the mean distance from each point to it's nearest
	// neighbour. Zero if there are fewer than two points.
	MeanNearest float64
}

// Measure computes Metrics for the given points.
func Measure(points []Point) Metrics {
	m := Metrics{Count: len(points)}
	if len(points) < 2 {
		return m
	}

	coords := make([]model2d.Coord, len(points))
	for i, p := range points {
		coords[i] = model2d.Coord{X: p.X, Y: p.Y}
	}
	tree := model2d.NewCoordTree(coords)

	m.MinDistance = math.Inf(1)
	total := 0.0
	for _, c := range coords {
		// nb. the nearest result is c itself (or a duplicate of it)
		near := tree.KNN(2, c)
		d := near[len(near)-1].Dist(c)
		total += d
		if d < m.MinDistance {
			m.MinDistance = d
		}
	}
	m.MeanNearest = total / float64(len(coords))

	return m
}
