// Package shuffle holds the uniform randomness helpers shared by the
// learning session engine. All session randomness must go through here:
// comparator-based shuffles are biased and are not used anywhere.
package shuffle

import "math/rand"

// Slice permutes s in place with Fisher-Yates. Every permutation is
// reachable with equal probability.
func Slice[T any](s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffled returns a shuffled copy of s, leaving s untouched.
func Shuffled[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	Slice(out)
	return out
}

// Sample returns n distinct elements of s chosen without replacement,
// via partial Fisher-Yates over a copy. If n >= len(s) it returns a
// shuffled copy of the whole slice.
func Sample[T any](s []T, n int) []T {
	if n >= len(s) {
		return Shuffled(s)
	}
	if n <= 0 {
		return nil
	}

	pool := make([]T, len(s))
	copy(pool, s)

	for i := 0; i < n; i++ {
		j := i + rand.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}
