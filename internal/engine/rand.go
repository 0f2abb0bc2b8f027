package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for reward rolls. *rand.Rand from
// math/rand/v2 satisfies it; tests substitute a seeded instance.
type Rand interface {
	IntN(n int) int
}

func newDefaultRand() Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// rollPoints returns a uniformly random point reward for the effort.
func rollPoints(rng Rand, e Effort) (int, error) {
	low, high, err := PointRange(e)
	if err != nil {
		return 0, err
	}
	return low + rng.IntN(high-low+1), nil
}
