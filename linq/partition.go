package linq

import "fmt"

// Skip returns a new sequence without the first n elements.
// Skipping past the end yields an empty sequence.
// Panics with an error wrapping [ErrNegativeCount] when n < 0.
func Skip[T any](items []T, n int) []T {
	if n < 0 {
		panic(fmt.Errorf("%w: Skip(%d)", ErrNegativeCount, n))
	}
	if n >= len(items) {
		return []T{}
	}
	out := make([]T, len(items)-n)
	copy(out, items[n:])
	return out
}

// SkipWhile skips elements from the start while fn returns true, then returns
// the rest.
func SkipWhile[T any](items []T, fn func(T) bool) []T {
	for i, item := range items {
		if !fn(item) {
			out := make([]T, len(items)-i)
			copy(out, items[i:])
			return out
		}
	}
	return []T{}
}

// Take returns a new sequence with at most the first n elements.
// Taking past the end yields the whole sequence.
// Panics with an error wrapping [ErrNegativeCount] when n < 0.
func Take[T any](items []T, n int) []T {
	if n < 0 {
		panic(fmt.Errorf("%w: Take(%d)", ErrNegativeCount, n))
	}
	if n > len(items) {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// TakeWhile returns elements from the start while fn returns true.
func TakeWhile[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range items {
		if !fn(item) {
			break
		}
		out = append(out, item)
	}
	return out
}

// Chunk splits items into consecutive groups of size. The last group may
// contain fewer than size elements.
// Panics with an error wrapping [ErrInvalidChunkSize] when size <= 0.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic(fmt.Errorf("%w: Chunk(%d)", ErrInvalidChunkSize, size))
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}
