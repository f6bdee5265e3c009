package enumerable

// Sequence is the read-only interface satisfied by [Enumerable][T].
//
// Accept Sequence in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Enumerable type.
//
// A minimal implementation only needs to provide these methods; the
// transforming Enumerable API is built on top of this surface.
type Sequence[T any] interface {
	// ToSlice returns a copy of every element as a plain Go slice.
	ToSlice() []T

	// Count returns the number of elements, or with a predicate the
	// number of elements satisfying it.
	Count(fns ...func(T) bool) int

	// Each calls fn(item, index) for every element.
	Each(fn func(T, int))

	// First returns the first element, optionally matching fns[0].
	// Returns the zero value and false when the sequence is empty or
	// no element matches.
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last element, optionally matching fns[0].
	// Returns the zero value and false when the sequence is empty or
	// no element matches.
	Last(fns ...func(T) bool) (T, bool)

	// Any reports whether the sequence is non-empty, or with a predicate
	// whether at least one element satisfies it.
	Any(fns ...func(T) bool) bool

	// All reports whether every element satisfies fn.
	All(fn func(T) bool) bool

	// IsEmpty reports whether the sequence contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the sequence contains at least one
	// element.
	IsNotEmpty() bool
}
