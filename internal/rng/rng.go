package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a Generator backed by a seeded math/rand source.
// Every match owns its own Seeded instance so that simulations are
// reproducible and matches can run in parallel without contention on a
// process-global source.
type Seeded struct {
	rand *rand.Rand
	seed int64
}

// NewSeeded returns a Generator seeded with the given value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
