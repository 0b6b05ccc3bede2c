// Package poisson generates evenly spread random points in a rectangle
// (Poisson disc sampling) such that no two points are closer than a given
// radius.
//
// A Sampler is grown from one or more seeds, either a step at a time (handy
// for animating the process) or straight to completion:
//
//	s, err := poisson.NewSampler(1000, 1000, 50, poisson.DefaultTries)
//	if err != nil {
//		panic(err)
//	}
//	s.StartAt(poisson.Pt(500, 500))
//	s.Run()
//
//	for _, p := range s.Points() {
//		fmt.Println(p.X, p.Y)
//	}
//
// Points() lists every accepted point in acceptance order, ActivePoints()
// those that may still spawn neighbours. Drawing them is left to the caller,
// see the render package for one way of doing it.
package poisson
