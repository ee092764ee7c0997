// Package rng isolates randomness behind one injectable source so sequence
// generation, audio micro-variation and particle placement can be seeded.
package rng

import (
	"math/rand/v2"
)

// Source yields uniform random values
// Implementations are not required to be safe for concurrent use
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n), n > 0
	IntN(n int) int
}

// New creates a deterministic source from seed
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewRandom creates a source seeded from the runtime generator
func NewRandom() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Range returns a value in [low, low+span)
func Range(src Source, low, span float64) float64 {
	return low + src.Float64()*span
}
