package level

import "math/rand"

// Random is the randomness the generator consumes. Implementations must be
// deterministic for a given seed so that a level can be replayed.
type Random interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewSource returns a Random seeded with seed.
func NewSource(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
