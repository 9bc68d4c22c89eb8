package randomizer

import "math/rand/v2"

// RNG abstracts random number generation so tests can inject a deterministic
// source. The default source is math/rand/v2.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

type defaultRNG struct{}

func (defaultRNG) IntN(n int) int   { return rand.IntN(n) }
func (defaultRNG) Float64() float64 { return rand.Float64() }

// weightedPick returns the index of one weighted choice, rolling against the
// cumulative weight. total must be the sum of weights and positive.
func weightedPick(r RNG, weights []float64, total float64) int {
	roll := r.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sampleWithout draws k elements without replacement via a partial Fisher-Yates
// shuffle over the pool's indices. The pool itself is not mutated.
func sampleWithout[T any](r RNG, pool []T, k int) []T {
	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	picked := make([]T, k)
	for i := 0; i < k; i++ {
		picked[i] = pool[indices[i]]
	}
	return picked
}
