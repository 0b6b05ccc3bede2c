package poisson

import (
	"math/rand"
	"time"
)

// Source yields uniformly distributed random numbers.
// *rand.Rand satisfies this.
type Source interface {
	// Float64 returns a number in [0, 1)
	Float64() float64
}

// NewSource returns a math/rand backed Source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// newSeed returns a seed based on the current time
func newSeed() int64 {
	return time.Now().UnixNano()
}

// between returns a uniform random number in [min, max)
func between(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// index returns a uniform random index in [0, n)
func index(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n { // guard against sources that (wrongly) return 1
		i = n - 1
	}
	return i
}
