package linq

// ─────────────────────────────────────────────────────────────────────────────
// First / Last
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstOrDefault returns the first element matching fn, or fallback when no
// element matches.
//
// Substitution is presence-based: a matching element is returned even when it
// equals the zero value or the fallback itself.
//
//	linq.FirstOrDefault([]int{0, 2, 3}, func(n int) bool { return n == 0 }, 99) // → 0
func FirstOrDefault[T any](items []T, fn func(T) bool, fallback T) T {
	item, ok := First(items, fn)
	if !ok {
		return fallback
	}
	return item
}

// Last returns the last element, optionally matching fns[0], scanning from
// the end. Returns the zero value and false when items is empty or no
// element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(items) - 1; i >= 0; i-- {
			if fns[0](items[i]) {
				return items[i], true
			}
		}
		return zero, false
	}
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastOrDefault returns the last element matching fn, or fallback when no
// element matches. Substitution is presence-based, as in [FirstOrDefault].
func LastOrDefault[T any](items []T, fn func(T) bool, fallback T) T {
	item, ok := Last(items, fn)
	if !ok {
		return fallback
	}
	return item
}

// ─────────────────────────────────────────────────────────────────────────────
// Single
// ─────────────────────────────────────────────────────────────────────────────

// Single returns the one and only element matching fns[0], or the one and
// only element of items when no predicate is given.
//
// The boolean reports presence: (zero, false, nil) means no element matched,
// which is not an error. [ErrMultipleMatches] is returned when more than one
// element matches.
func Single[T any](items []T, fns ...func(T) bool) (T, bool, error) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range items {
			if fns[0](item) {
				if matched {
					return zero, false, ErrMultipleMatches
				}
				found = item
				matched = true
			}
		}
		return found, matched, nil
	}
	switch len(items) {
	case 0:
		return zero, false, nil
	case 1:
		return items[0], true, nil
	default:
		return zero, false, ErrMultipleMatches
	}
}

// SingleOrDefault returns the one and only element matching fn, or fallback
// when zero or multiple elements match. It never returns an error.
func SingleOrDefault[T any](items []T, fn func(T) bool, fallback T) T {
	item, ok, err := Single(items, fn)
	if err != nil || !ok {
		return fallback
	}
	return item
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// ElementAt returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func ElementAt[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(items) {
		return zero, false
	}
	return items[index], true
}

// ElementAtOrDefault returns the element at index, or fallback when index is
// out of range.
func ElementAtOrDefault[T any](items []T, index int, fallback T) T {
	item, ok := ElementAt(items, index)
	if !ok {
		return fallback
	}
	return item
}
