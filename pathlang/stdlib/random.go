package stdlib

import "math/rand"

// Random wraps a seedable PRNG for the random()/randomRange() builtins.
// math/rand is used directly here: no example repo in the retrieved pack
// ships a third-party PRNG, and a seeded, injectable *rand.Rand is exactly
// what the standard library already provides for deterministic tests (see
// CompileOptions.SeedRandom and the "determinism" testable property in
// spec.md section 8).
type Random struct {
	r *rand.Rand
}

// NewRandom creates a Random seeded by seed if provided, otherwise
// seeded from a fixed default so Compile remains a pure function absent
// an explicit seed.
func NewRandom(seed *uint64) *Random {
	var s int64 = 1
	if seed != nil {
		s = int64(*seed)
	}
	return &Random{r: rand.New(rand.NewSource(s))}
}

// Float64 returns a pseudo-random value in [0, 1).
func (r *Random) Float64() float64 { return r.r.Float64() }

// Range returns a pseudo-random value in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}
