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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Scatter calls fn for every coordinate of size picked with probability density.
// Coordinates are visited row by row so a seed always yields the same cells.
func (r *RNG) Scatter(size Size, density float64, fn func(Coord)) {
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if r.Chance(density) {
				fn(Coord{X: x, Y: y})
			}
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
