package linq

// Any reports whether at least one element matches fns[0], or whether items
// is non-empty when no predicate is given.
func Any[T any](items []T, fns ...func(T) bool) bool {
	if len(fns) == 0 {
		return len(items) > 0
	}
	for _, item := range items {
		if fns[0](item) {
			return true
		}
	}
	return false
}

// All reports whether every element matches fn.
// Vacuously true for an empty sequence.
func All[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Contains reports whether items contains value.
func Contains[T comparable](items []T, value T) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// SequenceEqual reports whether a and b have the same length and equal
// elements at every index.
func SequenceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SequenceEqualFunc reports whether a and b have the same length and
// pairwise-equal elements under eq.
func SequenceEqualFunc[A, B any](a []A, b []B, eq func(A, B) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}
