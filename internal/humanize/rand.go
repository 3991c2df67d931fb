package humanize

import (
	"math/rand/v2"
)

// pcgStream is the fixed second word of the PCG state; the seed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

// Rand is the slice of math/rand/v2 the passes draw from. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a generator whose whole sequence is fixed by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

func choose(rng Rand, options []string) string {
	return options[rng.IntN(len(options))]
}
