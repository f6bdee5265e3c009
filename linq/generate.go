package linq

import "fmt"

// Range returns count consecutive integers starting at start.
// Panics with an error wrapping [ErrNegativeCount] when count < 0.
//
//	linq.Range(1, 3) // → [1 2 3]
//	linq.Range(0, 0) // → []
func Range(start, count int) []int {
	if count < 0 {
		panic(fmt.Errorf("%w: Range(%d, %d)", ErrNegativeCount, start, count))
	}
	out := make([]int, count)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// Repeat returns a sequence of count copies of value.
// Panics with an error wrapping [ErrNegativeCount] when count < 0.
func Repeat[T any](value T, count int) []T {
	if count < 0 {
		panic(fmt.Errorf("%w: Repeat(%d)", ErrNegativeCount, count))
	}
	out := make([]T, count)
	for i := range out {
		out[i] = value
	}
	return out
}

// Empty returns an empty sequence of type T.
func Empty[T any]() []T {
	return []T{}
}

// Concat returns the elements of a followed by the elements of b.
// Neither input is mutated.
func Concat[T any](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// DefaultIfEmpty returns a copy of items when non-empty, otherwise a
// single-element sequence containing fallback.
func DefaultIfEmpty[T any](items []T, fallback T) []T {
	if len(items) == 0 {
		return []T{fallback}
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
