// Package random provides pluggable randomness sources for shuffling and
// sampling.
//
// # Architecture
//
// The central abstraction is the [Source] interface: a uniform integer draw
// plus a shuffle driver. Callers that randomise data accept a Source instead
// of reaching for a global generator, which keeps the call site testable —
// inject a seeded or scripted source and the permutation is fixed.
//
// Five sources ship with this package:
//
//   - [Default] — the process-wide math/rand/v2 generator.
//   - [NewPCG] — deterministic seeded PCG generator.
//   - [NewChaCha8] — deterministic seeded ChaCha8 generator.
//   - [NewCrypto] — crypto/rand-backed source for unpredictable output.
//   - [NewScripted] — test double that replays a fixed script of draws.
//
// *math/rand/v2.Rand satisfies [Source] directly, so any generator built with
// rand.New plugs in without adaptation.
//
// # Concurrency
//
// [Default] and [NewCrypto] sources are safe for concurrent use. Seeded and
// scripted sources are not; give each goroutine its own.
package random

import "math/rand/v2"

// Source draws uniform random integers and drives shuffles.
//
// Implementations must return values uniform in [0, n) from IntN and must
// panic when n <= 0, matching math/rand/v2.
type Source interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Shuffle randomises the order of n elements by calling swap for each
	// exchanged pair of indices.
	Shuffle(n int, swap func(i, j int))
}

// defaultSource forwards to the package-level math/rand/v2 generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

func (defaultSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Default returns the process-wide source backed by math/rand/v2's global
// generator. It is automatically seeded and safe for concurrent use.
func Default() Source { return defaultSource{} }

// NewPCG returns a generator seeded with the given pair of values. Equal
// seeds produce equal draw sequences, which makes permutations reproducible
// across runs and platforms.
func NewPCG(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewChaCha8 returns a cryptographically strong seeded generator. Equal
// seeds produce equal draw sequences.
func NewChaCha8(seed [32]byte) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// shuffle drives a Fisher–Yates pass over n elements, drawing indices
// from intN.
func shuffle(n int, intN func(int) int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, intN(i+1))
	}
}
