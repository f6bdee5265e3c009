package linq

import (
	"math/rand/v2"
	"sort"

	"golang.org/x/exp/constraints"
)

// OrderBy returns a copy of items sorted in ascending order by the key
// extracted by fn. The sort is stable: elements with equal keys keep their
// original relative order.
func OrderBy[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	return OrderByFunc(items, func(a, b T) bool { return fn(a) < fn(b) })
}

// OrderByDescending returns a copy of items sorted in descending order by the
// key extracted by fn. The sort is stable.
func OrderByDescending[T any, K constraints.Ordered](items []T, fn func(T) K) []T {
	return OrderByFunc(items, func(a, b T) bool { return fn(b) < fn(a) })
}

// OrderByFunc returns a copy of items stably sorted by the given less
// function. Use it for composite orderings that a single key cannot express.
func OrderByFunc[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Reverse returns a new sequence with the elements in reverse order.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Shuffler supplies the random swaps consumed by [ShuffleWith].
// *rand.Rand from math/rand/v2 satisfies it, as does every source in this
// module's random package.
type Shuffler interface {
	// Shuffle performs a Fisher–Yates pass over n elements, calling
	// swap(i, j) for each exchange.
	Shuffle(n int, swap func(i, j int))
}

// Shuffle returns a uniformly random permutation of items using the
// process-wide random source. The input is untouched.
//
// For a deterministic permutation (seeded or scripted), use [ShuffleWith].
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// ShuffleWith returns a random permutation of items drawn from src.
// A nil src falls back to the process-wide source, as in [Shuffle].
func ShuffleWith[T any](items []T, src Shuffler) []T {
	if src == nil {
		return Shuffle(items)
	}
	out := make([]T, len(items))
	copy(out, items)
	src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
