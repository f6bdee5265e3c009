package linq

import "golang.org/x/exp/constraints"

// Numeric is the constraint satisfied by Go's built-in integer and
// floating-point types. It is the element constraint for [Sum] and [Average].
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Count returns the number of elements matching fns[0], or the sequence
// length when no predicate is given.
func Count[T any](items []T, fns ...func(T) bool) int {
	if len(fns) == 0 {
		return len(items)
	}
	n := 0
	for _, item := range items {
		if fns[0](item) {
			n++
		}
	}
	return n
}

// Aggregate left-folds items into a single value of type U:
// acc starts at seed and becomes fn(acc, item, index) for each element in
// sequence order. An empty sequence returns seed unchanged.
func Aggregate[T, U any](items []T, fn func(U, T, int) U, seed U) U {
	acc := seed
	for i, item := range items {
		acc = fn(acc, item, i)
	}
	return acc
}

// Sum returns the arithmetic sum of fn over all elements.
// An empty sequence sums to zero.
func Sum[T any, N Numeric](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Average returns the arithmetic mean of fn over all elements.
// Returns [ErrEmptySequence] when items is empty: the mean of nothing is
// undefined, not zero.
func Average[T any, N Numeric](items []T, fn func(T) N) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmptySequence
	}
	var total float64
	for _, item := range items {
		total += float64(fn(item))
	}
	return total / float64(len(items)), nil
}

// Min returns the smallest key extracted by fn over all elements.
// Returns [ErrEmptySequence] when items is empty rather than fabricating a
// +Inf or zero extremum.
func Min[T any, K constraints.Ordered](items []T, fn func(T) K) (K, error) {
	var zero K
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	best := fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); k < best {
			best = k
		}
	}
	return best, nil
}

// Max returns the largest key extracted by fn over all elements.
// Returns [ErrEmptySequence] when items is empty.
func Max[T any, K constraints.Ordered](items []T, fn func(T) K) (K, error) {
	var zero K
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	best := fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); best < k {
			best = k
		}
	}
	return best, nil
}

// MinBy returns the first element carrying the smallest key extracted by fn.
// Returns [ErrEmptySequence] when items is empty.
func MinBy[T any, K constraints.Ordered](items []T, fn func(T) K) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	bestItem, bestKey := items[0], fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); k < bestKey {
			bestKey, bestItem = k, item
		}
	}
	return bestItem, nil
}

// MaxBy returns the first element carrying the largest key extracted by fn.
// Returns [ErrEmptySequence] when items is empty.
func MaxBy[T any, K constraints.Ordered](items []T, fn func(T) K) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySequence
	}
	bestItem, bestKey := items[0], fn(items[0])
	for _, item := range items[1:] {
		if k := fn(item); bestKey < k {
			bestKey, bestItem = k, item
		}
	}
	return bestItem, nil
}
