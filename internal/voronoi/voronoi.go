package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// based on
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
//
// + edge ordering & float sites

// Cell is the area of the plane closer to Site than to any other site.
type Cell struct {
	Site  r2.Point
	Edges []*model2d.Segment
}

// Diagram is the set of cells for some sites, in the order the sites were
// given.
type Diagram []*Cell

// New computes the voronoi cells for the given sites, clipped to bounds.
// Sites are assumed to be distinct & within bounds.
//
// This is O(n^2) in the number of sites.
func New(bounds r2.Rect, sites []r2.Point) Diagram {
	min := model2d.Coord{X: bounds.X.Lo, Y: bounds.Y.Lo}
	max := model2d.Coord{X: bounds.X.Hi, Y: bounds.Y.Hi}

	coords := make([]model2d.Coord, len(sites))
	for i, s := range sites {
		coords[i] = model2d.Coord{X: s.X, Y: s.Y}
	}

	d := make(Diagram, len(coords))
	for i, c := range coords {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for _, c1 := range coords {
			if c == c1 {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}
		d[i] = &Cell{
			Site:  sites[i],
			Edges: constraints.Mesh().SegmentSlice(),
		}
	}

	d.Repair(1e-8)
	return d
}

// Repair merges nearly identical coordinates (within epsilon) so that
// neighbouring cells share exact vertices, drops edges that collapse to a
// point & orders each cell's edges end to start.
func (d Diagram) Repair(epsilon float64) {
	coordSet := map[model2d.Coord]bool{}
	coordSlice := []model2d.Coord{}
	for _, cell := range d {
		for _, s := range cell.Edges {
			for _, p := range s {
				if !coordSet[p] {
					coordSet[p] = true
					coordSlice = append(coordSlice, p)
				}
			}
		}
	}
	if len(coordSlice) == 0 {
		return
	}
	tree := model2d.NewCoordTree(coordSlice)

	mapping := map[model2d.Coord]model2d.Coord{}
	for _, c := range coordSlice {
		if !coordSet[c] {
			continue
		}
		for _, n := range neighboursInDistance(tree, c, epsilon) {
			if coordSet[n] {
				coordSet[n] = false
				mapping[n] = c
			}
		}
	}

	for _, cell := range d {
		starts := map[model2d.Coord]*model2d.Segment{}

		for i := 0; i < len(cell.Edges); i++ {
			edge := cell.Edges[i]
			for j, c := range edge {
				edge[j] = mapping[c]
			}
			if edge[0] == edge[1] {
				essentials.UnorderedDelete(&cell.Edges, i)
				i--
				continue
			}
			starts[edge[0]] = edge
		}

		if len(cell.Edges) == 0 {
			continue
		}

		order := make([]*model2d.Segment, 1, len(cell.Edges))
		order[0] = cell.Edges[0]
		for len(order) < len(cell.Edges) {
			next, ok := starts[order[len(order)-1][1]]
			if !ok {
				break
			}
			order = append(order, next)
		}
		if len(order) == len(cell.Edges) {
			cell.Edges = order
		}
	}
}

// Vertices returns the corners of the cell, in edge order.
func (c *Cell) Vertices() []r2.Point {
	out := make([]r2.Point, len(c.Edges))
	for i, e := range c.Edges {
		out[i] = r2.Point{X: e[0].X, Y: e[0].Y}
	}
	return out
}

// Polygon returns the cell outline as a Polygon, or nil if the edges don't
// join end to start in a loop.
func (c *Cell) Polygon() *Polygon {
	for i, e := range c.Edges {
		if e[1] != c.Edges[(i+1)%len(c.Edges)][0] {
			return nil
		}
	}
	return NewPolygon(c.Vertices())
}

func neighboursInDistance(tree *model2d.CoordTree, c model2d.Coord, epsilon float64) []model2d.Coord {
	for k := 2; true; k++ {
		neighbours := tree.KNN(k, c)
		if len(neighbours) < k {
			return neighbours
		}
		if neighbours[len(neighbours)-1].Dist(c) > epsilon {
			return neighbours[:len(neighbours)-1]
		}
	}
	panic("unreachable")
}
