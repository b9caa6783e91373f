package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed reports the seed the generator was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
