package poisson

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// DefaultTries is the number of candidates we throw around an active
	// point before giving up on it, if Config.Tries is not set.
	DefaultTries = 30
)

var (
	// ErrInvalidDomain implies the sampling area has a non positive (or
	// non finite) width or height.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidRadius implies the minimum distance between points is not
	// a positive finite number.
	ErrInvalidRadius = errors.New("invalid radius")

	// ErrInvalidTries implies a negative retry budget was given.
	ErrInvalidTries = errors.New("invalid tries")
)

// Config holds everything a Sampler needs.
// Only Width, Height & Radius are required.
type Config struct {
	// Width & Height of the sampling area, which runs from (0,0) to
	// (Width,Height) inclusive. Required, both must be > 0.
	Width  float64
	Height float64

	// Radius is the minimum distance allowed between any two points.
	// Required, must be > 0.
	Radius float64

	// Tries is the number of candidates attempted around an active point
	// before it is retired. DefaultTries if 0.
	Tries int

	// Seed for the rng (random number chosen if not set).
	// Ignored if Source is given.
	Seed int64

	// Source of uniform random numbers. Optional, if not set a math/rand
	// source is created from Seed. Tests can supply something deterministic.
	Source Source
}

// validate checks required settings & fills in defaults
func (c *Config) validate() error {
	if !positive(c.Width) || !positive(c.Height) {
		return errors.Wrapf(ErrInvalidDomain, "width %v height %v", c.Width, c.Height)
	}
	if !positive(c.Radius) {
		return errors.Wrapf(ErrInvalidRadius, "radius %v", c.Radius)
	}
	if c.Tries < 0 {
		return errors.Wrapf(ErrInvalidTries, "tries %d", c.Tries)
	}
	if c.Tries == 0 {
		c.Tries = DefaultTries
	}
	return nil
}

// positive returns if v is a finite number > 0
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
