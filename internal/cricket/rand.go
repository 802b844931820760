package cricket

import "math/rand/v2"

// Rand is the random source used for delivery jitter, power-ups and shot
// noise. Injecting it keeps matches reproducible from a seed.
type Rand interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed int64) Rand {
	s := uint64(seed) //#nosec G115 -- seed bits, sign irrelevant
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// between returns an integer in [lo, hi], both ends included.
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
