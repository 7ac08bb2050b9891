// Package rng provides the randomness abstraction shared by every rolling
// system in the Ironvale forge engine. Loot rolls, damage samples, and crit
// checks all draw from one injected Source, so a seeded source reproduces an
// entire generation sequence.
package rng

// Source is the randomness provider for the forge.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// IntBetween returns a uniform random int in the inclusive range [min, max].
//
// Precondition: min <= max.
func IntBetween(src Source, min, max int) int {
	if min > max {
		panic("rng: IntBetween called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Intn(max-min+1)
}

// FloatBetween returns a uniform random float64 in [min, max).
//
// Precondition: min <= max.
// Postcondition: min <= result <= max; min == max returns min exactly.
func FloatBetween(src Source, min, max float64) float64 {
	if min > max {
		panic("rng: FloatBetween called with min > max")
	}
	if min == max {
		return min
	}
	return min + src.Float64()*(max-min)
}
