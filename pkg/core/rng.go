package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillWeighted sets each cell in buf to Alive with probability p.
// Values of p at or below 0 leave every cell Dead; at or above 1 every
// cell becomes Alive.
func FillWeighted(r *rand.Rand, buf []Cell, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = Alive
		} else {
			buf[i] = Dead
		}
	}
}
