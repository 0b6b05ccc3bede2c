package poisson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sequence is a Source that replays the given values forever
type sequence struct {
	values []float64
	i      int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// swapSource lets a test change the Source a Sampler is using
type swapSource struct {
	Source
}

// requireSpaced checks no two points are closer than r (brute force)
func requireSpaced(t *testing.T, points []Point, r float64) {
	t.Helper()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := Distance(points[i], points[j])
			require.GreaterOrEqualf(t, d, r, "points %d %v and %d %v too close", i, points[i], j, points[j])
		}
	}
}

// requireWithin checks all points lie in [0,w] x [0,h]
func requireWithin(t *testing.T, points []Point, w, h float64) {
	t.Helper()
	for i, p := range points {
		require.Truef(t, p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h, "point %d %v outside %vx%v", i, p, w, h)
	}
}

func newTestSampler(t *testing.T, w, h, r float64, seed int64) *Sampler {
	t.Helper()
	s, err := New(&Config{Width: w, Height: h, Radius: r, Seed: seed})
	require.NoError(t, err)
	return s
}
