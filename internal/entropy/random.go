// Package entropy provides the seedable random source threaded through
// world generation and per-tick behavior. Every stochastic decision in
// the simulation draws from one Source so a run is reproducible from
// its seed.
package entropy

import "math/rand"

// Source wraps a seeded generator. Not safe for concurrent use; the
// simulation has a single stepper and that is the only consumer.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source from a seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Float returns a random float64 in [0, 1).
func (s *Source) Float() float64 {
	return s.r.Float64()
}

// Range returns a random float64 in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.r.Float64()*(max-min)
}

// IntN returns a random int in [0, n). n must be > 0.
func (s *Source) IntN(n int) int {
	return s.r.Intn(n)
}

// Between returns a random int in [min, max] inclusive.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Chance reports a Bernoulli trial with probability p.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}
