package enumerable

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-linq-utils/linq"
)

// Enumerable is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the sequence returns a *new* Enumerable,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same sequence concurrently) and avoids
// accidental aliasing bugs in pipelines.
//
// # Creating a sequence
//
//	e := enumerable.Of(1, 2, 3, 4, 5)
//	e := enumerable.From([]string{"a", "b", "c"})
//	e := enumerable.FromRange(1, 100)
//	e := enumerable.Empty[int]()
//
// # Method chaining
//
//	result := enumerable.Of(1, 2, 3, 4, 5, 6).
//	    Where(func(n, _ int) bool { return n%2 == 0 }).
//	    SortBy(func(n int) float64 { return float64(n) }).
//	    Take(2)
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	names := enumerable.Select(people, func(p Person, _ int) string {
//	    return p.Name
//	})
//	byDept := enumerable.GroupBy(people, func(p Person) string {
//	    return p.Dept
//	})
type Enumerable[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates an Enumerable from a variadic list of items (copied).
func Of[T any](items ...T) *Enumerable[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Enumerable[T]{items: dst}
}

// From creates an Enumerable from a slice (the slice is copied).
func From[T any](items []T) *Enumerable[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Enumerable[T]{items: dst}
}

// FromRange creates an Enumerable of count consecutive integers starting at
// start. Panics with an error wrapping [linq.ErrNegativeCount] when count
// is negative.
func FromRange(start, count int) *Enumerable[int] {
	return &Enumerable[int]{items: linq.Range(start, count)}
}

// Empty creates an empty Enumerable of type T.
func Empty[T any]() *Enumerable[T] {
	return &Enumerable[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a copy of the underlying slice.
func (e *Enumerable[T]) ToSlice() []T {
	out := make([]T, len(e.items))
	copy(out, e.items)
	return out
}

// ToJSON serialises the sequence to a JSON array.
func (e *Enumerable[T]) ToJSON() ([]byte, error) {
	return json.Marshal(e.items)
}

// Count returns the number of elements, or with a predicate the number of
// elements satisfying it.
func (e *Enumerable[T]) Count(fns ...func(T) bool) int {
	return linq.Count(e.items, fns...)
}

// IsEmpty reports whether the sequence contains no elements.
func (e *Enumerable[T]) IsEmpty() bool { return len(e.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (e *Enumerable[T]) IsNotEmpty() bool { return len(e.items) > 0 }

// ElementAt returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (e *Enumerable[T]) ElementAt(index int) (T, bool) {
	return linq.ElementAt(e.items, index)
}

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (e *Enumerable[T]) String() string {
	b, err := e.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", e.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element.
func (e *Enumerable[T]) Each(fn func(T, int)) {
	for i, item := range e.items {
		fn(item, i)
	}
}

// Tap calls fn(e) for side-effects (e.g. logging or debugging) and returns
// e unchanged for further chaining.
func (e *Enumerable[T]) Tap(fn func(*Enumerable[T])) *Enumerable[T] {
	fn(e)
	return e
}

// Dump prints the sequence to stdout and returns e for chaining.
func (e *Enumerable[T]) Dump() *Enumerable[T] {
	fmt.Println(e.String())
	return e
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no element
// satisfies the predicate.
func (e *Enumerable[T]) First(fns ...func(T) bool) (T, bool) {
	return linq.First(e.items, fns...)
}

// FirstOrDefault returns the first element matching fn, or fallback when no
// element matches. Substitution is based on presence alone, so a matching
// zero-value element is returned as-is.
func (e *Enumerable[T]) FirstOrDefault(fn func(T) bool, fallback T) T {
	return linq.FirstOrDefault(e.items, fn, fallback)
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no element
// satisfies the predicate.
func (e *Enumerable[T]) Last(fns ...func(T) bool) (T, bool) {
	return linq.Last(e.items, fns...)
}

// LastOrDefault returns the last element matching fn, or fallback when no
// element matches.
func (e *Enumerable[T]) LastOrDefault(fn func(T) bool, fallback T) T {
	return linq.LastOrDefault(e.items, fn, fallback)
}

// Single returns the only element, optionally the only one matching fns[0].
// The bool reports presence; the error is non-nil (wrapping
// [linq.ErrMultipleMatches]) when more than one element qualifies.
func (e *Enumerable[T]) Single(fns ...func(T) bool) (T, bool, error) {
	return linq.Single(e.items, fns...)
}

// SingleOrDefault returns the only element matching fn, or fallback when
// zero or multiple elements match.
func (e *Enumerable[T]) SingleOrDefault(fn func(T) bool, fallback T) T {
	return linq.SingleOrDefault(e.items, fn, fallback)
}

// Any reports whether the sequence is non-empty, or with a predicate whether
// at least one element satisfies it.
func (e *Enumerable[T]) Any(fns ...func(T) bool) bool {
	return linq.Any(e.items, fns...)
}

// All reports whether every element satisfies fn.
// It is vacuously true for an empty sequence.
func (e *Enumerable[T]) All(fn func(T) bool) bool {
	return linq.All(e.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a new sequence with only the elements for which
// fn(item, index) returns true.
func (e *Enumerable[T]) Where(fn func(T, int) bool) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Where(e.items, fn)}
}

// WhereNot returns a new sequence with elements for which fn returns true
// removed. It is the complement of [Enumerable.Where].
func (e *Enumerable[T]) WhereNot(fn func(T, int) bool) *Enumerable[T] {
	return e.Where(func(item T, i int) bool { return !fn(item, i) })
}

// Distinct returns a new sequence with duplicates removed, keeping the first
// occurrence of each key. fn extracts the comparison key; pass nil to use
// fmt.Sprintf("%v") for any T.
func (e *Enumerable[T]) Distinct(fn func(T) any) *Enumerable[T] {
	if fn == nil {
		fn = func(item T) any { return fmt.Sprintf("%v", item) }
	}
	return &Enumerable[T]{items: linq.DistinctBy(e.items, fn)}
}

// Reverse returns a new sequence with elements in reversed order.
func (e *Enumerable[T]) Reverse() *Enumerable[T] {
	return &Enumerable[T]{items: linq.Reverse(e.items)}
}

// SortBy returns a new sequence sorted in ascending order by the float64
// key extracted by fn. The sort is stable.
func (e *Enumerable[T]) SortBy(fn func(T) float64) *Enumerable[T] {
	return &Enumerable[T]{items: linq.OrderBy(e.items, fn)}
}

// SortByDesc returns a new sequence sorted in descending order by fn.
// The sort is stable.
func (e *Enumerable[T]) SortByDesc(fn func(T) float64) *Enumerable[T] {
	return &Enumerable[T]{items: linq.OrderByDescending(e.items, fn)}
}

// SortFunc returns a new sequence sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (e *Enumerable[T]) SortFunc(less func(a, b T) bool) *Enumerable[T] {
	return &Enumerable[T]{items: linq.OrderByFunc(e.items, less)}
}

// Shuffle returns a new sequence with elements in a randomly shuffled order.
func (e *Enumerable[T]) Shuffle() *Enumerable[T] {
	return &Enumerable[T]{items: linq.Shuffle(e.items)}
}

// ShuffleWith returns a new sequence shuffled by drawing indices from src.
// A nil src falls back to the process-wide generator.
func (e *Enumerable[T]) ShuffleWith(src linq.Shuffler) *Enumerable[T] {
	return &Enumerable[T]{items: linq.ShuffleWith(e.items, src)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Combine
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new sequence with items added at the end.
func (e *Enumerable[T]) Append(items ...T) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Concat(e.items, items)}
}

// Prepend returns a new sequence with items inserted at the front.
func (e *Enumerable[T]) Prepend(items ...T) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Concat(items, e.items)}
}

// Concat returns a new sequence with all elements from other appended.
func (e *Enumerable[T]) Concat(other *Enumerable[T]) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Concat(e.items, other.items)}
}

// DefaultIfEmpty returns e when non-empty, otherwise a single-element
// sequence containing fallback.
func (e *Enumerable[T]) DefaultIfEmpty(fallback T) *Enumerable[T] {
	return &Enumerable[T]{items: linq.DefaultIfEmpty(e.items, fallback)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns a new sequence with at most the first n elements.
// Panics with an error wrapping [linq.ErrNegativeCount] when n < 0.
func (e *Enumerable[T]) Take(n int) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Take(e.items, n)}
}

// TakeWhile returns elements from the start while fn returns true.
func (e *Enumerable[T]) TakeWhile(fn func(T) bool) *Enumerable[T] {
	return &Enumerable[T]{items: linq.TakeWhile(e.items, fn)}
}

// Skip returns a new sequence without the first n elements.
// Panics with an error wrapping [linq.ErrNegativeCount] when n < 0.
func (e *Enumerable[T]) Skip(n int) *Enumerable[T] {
	return &Enumerable[T]{items: linq.Skip(e.items, n)}
}

// SkipWhile skips elements while fn returns true, then returns the rest.
func (e *Enumerable[T]) SkipWhile(fn func(T) bool) *Enumerable[T] {
	return &Enumerable[T]{items: linq.SkipWhile(e.items, fn)}
}

// Chunk splits the sequence into consecutive groups of size, returning a
// plain [][]T. The last group may contain fewer than size elements.
// Panics with an error wrapping [linq.ErrInvalidChunkSize] when size <= 0.
//
// To work with each chunk as an *Enumerable, wrap with [From]:
//
//	for _, chunk := range e.Chunk(2) {
//	    sub := enumerable.From(chunk)
//	    // ...
//	}
func (e *Enumerable[T]) Chunk(size int) [][]T {
	return linq.Chunk(e.items, size)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all elements using fn to extract numeric values.
func (e *Enumerable[T]) Sum(fn func(T) float64) float64 {
	return linq.Sum(e.items, fn)
}

// Reduce folds the sequence to a single value of the same type T.
//
// For folds that change the type (T → U where T ≠ U), use the package-level
// [Aggregate] function.
func (e *Enumerable[T]) Reduce(fn func(carry, item T) T, initial T) T {
	return linq.Aggregate(e.items, func(acc T, item T, _ int) T {
		return fn(acc, item)
	}, initial)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(e) if condition is true and returns the result.
// Otherwise returns e unchanged.
func (e *Enumerable[T]) When(condition bool, fn func(*Enumerable[T]) *Enumerable[T]) *Enumerable[T] {
	if condition {
		return fn(e)
	}
	return e
}

// Unless calls fn(e) if condition is false; otherwise returns e.
func (e *Enumerable[T]) Unless(condition bool, fn func(*Enumerable[T]) *Enumerable[T]) *Enumerable[T] {
	return e.When(!condition, fn)
}
