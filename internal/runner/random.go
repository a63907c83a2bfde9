package runner

import "math/rand"

// RandomSource supplies obstacle type choice and cosmetic jitter.
// *rand.Rand satisfies it; tests inject scripted sources.
type RandomSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRandom returns the default seeded source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
