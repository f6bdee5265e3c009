package enumerable

// This file contains package-level generic functions for operations that
// transform an Enumerable[T] to an Enumerable[U] (T ≠ U) or introduce a key
// type.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They are designed to
// compose with method-chaining calls:
//
//	result := enumerable.Select(
//	    enumerable.Of(1, 2, 3, 4, 5).Where(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-linq-utils/linq"
)

// Select applies fn to every element and returns a new Enumerable[U].
//
//	doubled := enumerable.Select(enumerable.Of(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Select[T, U any](e *Enumerable[T], fn func(T, int) U) *Enumerable[U] {
	return &Enumerable[U]{items: linq.Select(e.items, fn)}
}

// SelectMany applies fn to every element (producing a []U per element) and
// flattens the results into a single Enumerable[U].
//
//	words := enumerable.SelectMany(enumerable.Of("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func SelectMany[T, U any](e *Enumerable[T], fn func(T, int) []U) *Enumerable[U] {
	return &Enumerable[U]{items: linq.SelectMany(e.items, fn)}
}

// Aggregate folds Enumerable[T] to a single value of type U.
//
//	sum := enumerable.Aggregate(enumerable.Of(1, 2, 3, 4),
//	    func(acc, n, _ int) int { return acc + n }, 0)
func Aggregate[T, U any](e *Enumerable[T], fn func(U, T, int) U, seed U) U {
	return linq.Aggregate(e.items, fn, seed)
}

// GroupBy groups elements by the comparable key K extracted by fn, returning
// a [linq.Lookup] that preserves first-seen key order.
//
//	byDept := enumerable.GroupBy(employees,
//	    func(e Employee) string { return e.Dept })
func GroupBy[T any, K comparable](e *Enumerable[T], fn func(T) K) *linq.Lookup[K, T] {
	return linq.GroupBy(e.items, fn)
}

// Join correlates the elements of outer and inner on equal keys and applies
// result to each matching pair. Output order is outer-major, inner-minor.
func Join[O, I any, K comparable, R any](
	outer *Enumerable[O],
	inner *Enumerable[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) *Enumerable[R] {
	return &Enumerable[R]{items: linq.Join(outer.items, inner.items, outerKey, innerKey, result)}
}

// Zip combines two sequences element-by-element into Pairs.
// Stops at the shorter of the two sequences.
//
//	pairs := enumerable.Zip(
//	    enumerable.Of("a", "b", "c"),
//	    enumerable.Of(1, 2, 3),
//	) // → [(a,1), (b,2), (c,3)]
func Zip[A, B any](a *Enumerable[A], b *Enumerable[B]) *Enumerable[Pair[A, B]] {
	return &Enumerable[Pair[A, B]]{items: linq.Zip(a.items, b.items, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	})}
}

// Min returns the smallest key extracted by fn.
// Returns [linq.ErrEmptySequence] for an empty sequence.
func Min[T any, K constraints.Ordered](e *Enumerable[T], fn func(T) K) (K, error) {
	return linq.Min(e.items, fn)
}

// Max returns the largest key extracted by fn.
// Returns [linq.ErrEmptySequence] for an empty sequence.
func Max[T any, K constraints.Ordered](e *Enumerable[T], fn func(T) K) (K, error) {
	return linq.Max(e.items, fn)
}

// Sum adds up the numeric keys extracted by fn, keeping N's type.
// An empty sequence sums to zero.
func Sum[T any, N linq.Numeric](e *Enumerable[T], fn func(T) N) N {
	return linq.Sum(e.items, fn)
}

// Average returns the arithmetic mean of the keys extracted by fn.
// Returns [linq.ErrEmptySequence] for an empty sequence.
func Average[T any, N linq.Numeric](e *Enumerable[T], fn func(T) N) (float64, error) {
	return linq.Average(e.items, fn)
}

// ToDictionary builds a map keyed by fn with one element per key.
// Returns an error wrapping [linq.ErrDuplicateKey] when two elements share
// a key.
//
//	byID := enumerable.ToDictionary(users, func(u User) int { return u.ID })
func ToDictionary[T any, K comparable](e *Enumerable[T], fn func(T) K) (map[K]T, error) {
	return linq.ToDictionary(e.items, fn)
}
