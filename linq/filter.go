package linq

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Where returns the elements for which fn(item, index) returns true,
// preserving sequence order.
func Where[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// OfType returns the elements whose dynamic type is assignable to U,
// preserving sequence order. Interface types match polymorphically: every
// element implementing interface U is kept.
//
//	mixed := []any{1, "a", 2, "b"}
//	linq.OfType[int](mixed) // → [1 2]
func OfType[U, T any](items []T) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		if v, ok := any(item).(U); ok {
			out = append(out, v)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Distinct returns the unique elements of items, keeping the first occurrence
// of each value in first-occurrence order.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// DistinctBy returns elements with duplicates removed, comparing by the key
// extracted by fn. The first element carrying each key is kept.
func DistinctBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Except returns the distinct elements of a that do not appear in b,
// in first-occurrence order.
func Except[T comparable](a, b []T) []T {
	drop := make(map[T]struct{}, len(b))
	for _, item := range b {
		drop[item] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	out := make([]T, 0)
	for _, item := range a {
		if _, skip := drop[item]; skip {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Intersect returns the distinct elements of a that also appear in b,
// in first-occurrence order of a.
func Intersect[T comparable](a, b []T) []T {
	keep := make(map[T]struct{}, len(b))
	for _, item := range b {
		keep[item] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	out := make([]T, 0)
	for _, item := range a {
		if _, found := keep[item]; !found {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Union returns the distinct elements of a followed by the distinct elements
// of b not already present, preserving first-occurrence order.
func Union[T comparable](a, b []T) []T {
	return Distinct(Concat(a, b))
}
