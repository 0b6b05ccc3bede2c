package poisson

import (
	"log/slog"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/voidshard/poisson/internal/grid"
)

var (
	// ErrSeedOutOfDomain implies a start point was outside of the sampling
	// area. The point is dropped, the Sampler is unchanged.
	ErrSeedOutOfDomain = errors.New("seed outside of domain")

	// ErrSeedTooClose implies a start point was closer than Radius to a
	// point we already have. The point is dropped, the Sampler is unchanged.
	ErrSeedTooClose = errors.New("seed too close to existing point")
)

// Sampler places points in a rectangle such that no two points are closer
// than some radius, growing outward from one or more seeds
// (Bridson's Poisson disc sampling).
//
// Cells in the backing grid are radius/sqrt(2) wide so each holds at most one
// point. Any point closer than radius to a candidate sits at most two cells
// away from it, so checking a 5x5 block of cells is enough to find it.
//
// A Sampler is not safe for concurrent use.
type Sampler struct {
	bounds r2.Rect
	radius float64
	tries  int
	seed   int64
	rng    Source

	grid  *grid.Grid
	reach int

	// active holds indexes into ordered
	active  []int
	ordered []Point
	steps   int
}

// NewSampler is sugar for New with the minimum required settings.
// A tries of 0 or less means DefaultTries.
func NewSampler(width, height, radius float64, tries int) (*Sampler, error) {
	if tries < 0 {
		tries = 0
	}
	return New(&Config{Width: width, Height: height, Radius: radius, Tries: tries})
}

// New creates an empty Sampler from the given config.
func New(cfg *Config) (*Sampler, error) {
	c := *cfg
	err := c.validate()
	if err != nil {
		return nil, err
	}

	if c.Source == nil {
		if c.Seed == 0 {
			c.Seed = newSeed()
		}
		c.Source = NewSource(c.Seed)
	}

	cellSize := c.Radius / math.Sqrt2
	g, err := grid.New(c.Width, c.Height, cellSize)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDomain, "radius %v: %v", c.Radius, err)
	}

	return &Sampler{
		bounds:  domain(c.Width, c.Height),
		radius:  c.Radius,
		tries:   c.Tries,
		seed:    c.Seed,
		rng:     c.Source,
		grid:    g,
		reach:   int(math.Ceil(c.Radius / cellSize)),
		active:  []int{},
		ordered: []Point{},
	}, nil
}

// Bounds returns the sampling area
func (s *Sampler) Bounds() r2.Rect {
	return s.bounds
}

// Radius returns the minimum distance between points
func (s *Sampler) Radius() float64 {
	return s.radius
}

// Tries returns how many candidates are attempted per active point
func (s *Sampler) Tries() int {
	return s.tries
}

// CellSize returns the edge length of a grid cell
func (s *Sampler) CellSize() float64 {
	return s.grid.CellSize()
}

// Seed returns the seed of the internal rng. If the config supplied its own
// Source this is just Config.Seed, which may be 0.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// State returns the current State
func (s *Sampler) State() State {
	switch {
	case len(s.ordered) == 0:
		return Empty
	case len(s.active) == 0:
		return Exhausted
	case s.steps == 0:
		return Seeded
	}
	return Growing
}

// Start seeds the sampler at a uniformly random point in the area.
// The chosen point is returned.
func (s *Sampler) Start() (Point, error) {
	p := Pt(
		between(s.rng, s.bounds.X.Lo, s.bounds.X.Hi),
		between(s.rng, s.bounds.Y.Lo, s.bounds.Y.Hi),
	)
	return p, s.StartAt(p)
}

// StartAt seeds the sampler at p. It may be called more than once, each
// seed starts another growth front sharing the same spacing rules.
//
// Seeds that would break the rules are dropped & reported with
// ErrSeedOutOfDomain or ErrSeedTooClose. Neither is fatal, the sampler
// just carries on without the seed.
func (s *Sampler) StartAt(p Point) error {
	if !s.bounds.ContainsPoint(p) {
		Logger().Debug("seed dropped", slog.Any("point", p), slog.String("reason", "outside domain"))
		return errors.Wrapf(ErrSeedOutOfDomain, "seed %v", p)
	}

	cx, cy := s.grid.Cell(p.X, p.Y)
	if s.crowded(p, cx, cy) {
		Logger().Debug("seed dropped", slog.Any("point", p), slog.String("reason", "too close"))
		return errors.Wrapf(ErrSeedTooClose, "seed %v", p)
	}

	if !s.add(p, cx, cy) {
		return errors.Wrapf(ErrSeedOutOfDomain, "seed %v has no grid cell", p)
	}
	return nil
}

// Step attempts to add one point next to a random active point.
// If a point was added it's returned along with true.
//
// If no room can be found around the chosen active point within Tries
// attempts, that point is retired & nothing is added.
// Step does nothing if there are no active points.
func (s *Sampler) Step() (Point, bool) {
	if len(s.active) == 0 {
		return Point{}, false
	}
	s.steps++

	ai := index(s.rng, len(s.active))
	parent := s.ordered[s.active[ai]]

	for n := 0; n < s.tries; n++ {
		theta := between(s.rng, 0, 2*math.Pi)
		m := between(s.rng, s.radius, 2*s.radius)
		candidate := parent.Add(polar(theta, m))

		if !s.bounds.ContainsPoint(candidate) {
			continue
		}

		cx, cy := s.grid.Cell(candidate.X, candidate.Y)
		if s.crowded(candidate, cx, cy) {
			continue
		}

		if !s.add(candidate, cx, cy) {
			continue
		}
		return candidate, true
	}

	Logger().Debug("retiring active point", slog.Any("point", parent), slog.Int("active", len(s.active)-1))
	essentials.UnorderedDelete(&s.active, ai)

	return Point{}, false
}

// Run steps until there are no active points left, returning the number
// of points added.
func (s *Sampler) Run() int {
	added := 0
	for len(s.active) > 0 {
		if _, ok := s.Step(); ok {
			added++
		}
	}
	return added
}

// RunN calls Step at most n times, stopping early if there are no active
// points left. It returns the number of points added.
func (s *Sampler) RunN(n int) int {
	added := 0
	for i := 0; i < n && len(s.active) > 0; i++ {
		if _, ok := s.Step(); ok {
			added++
		}
	}
	return added
}

// Points returns all accepted points in the order they were accepted.
// The returned slice is a copy.
func (s *Sampler) Points() []Point {
	out := make([]Point, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// ActivePoints returns the points that may still spawn neighbours, in no
// particular order. The returned slice is a copy.
func (s *Sampler) ActivePoints() []Point {
	out := make([]Point, len(s.active))
	for i, idx := range s.active {
		out[i] = s.ordered[idx]
	}
	return out
}

// Len returns the number of accepted points
func (s *Sampler) Len() int {
	return len(s.ordered)
}

// ActiveLen returns the number of active points
func (s *Sampler) ActiveLen() int {
	return len(s.active)
}

// crowded returns if any accepted point is closer than radius to p,
// where p sits in cell (cx, cy). An occupied cell always counts as crowded.
func (s *Sampler) crowded(p Point, cx, cy int) bool {
	if _, ok := s.grid.Get(cx, cy); ok {
		return true
	}

	tooClose := false
	s.grid.Neighbours(cx, cy, s.reach, func(i int) bool {
		if Distance(p, s.ordered[i]) < s.radius {
			tooClose = true
		}
		return !tooClose
	})
	return tooClose
}

// add accepts p, which sits in cell (cx, cy). Nothing is added if the cell
// doesn't exist or is taken.
func (s *Sampler) add(p Point, cx, cy int) bool {
	i := len(s.ordered)
	if !s.grid.Set(cx, cy, i) {
		Logger().Debug("point has no free cell", slog.Any("point", p), slog.Int("x", cx), slog.Int("y", cy))
		return false
	}
	s.ordered = append(s.ordered, p)
	s.active = append(s.active, i)

	Logger().Debug("point added", slog.Any("point", p), slog.Int("index", i))
	return true
}
