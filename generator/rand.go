package generator

import (
	"math/rand"
	"time"
)

// ensureRand falls back to a time seeded source when rng is nil.
func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

// intBetween returns a uniformly distributed int in the closed range [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
