package linq

import "fmt"

// Lookup is the ordered one-to-many index produced by [GroupBy].
//
// Keys appear in the order their first element was seen in the source
// sequence, and elements within a group keep their original relative order.
// A Lookup is read-only after construction; accessors return copies, so a
// Lookup is safe to share across goroutines.
type Lookup[K comparable, T any] struct {
	keys   []K
	groups map[K][]T
}

// Keys returns the group keys in first-seen order.
func (l *Lookup[K, T]) Keys() []K {
	out := make([]K, len(l.keys))
	copy(out, l.keys)
	return out
}

// Group returns the elements grouped under key, in their original order.
// Returns an empty sequence when key is not present.
func (l *Lookup[K, T]) Group(key K) []T {
	items := l.groups[key]
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Has reports whether key has a group.
func (l *Lookup[K, T]) Has(key K) bool {
	_, ok := l.groups[key]
	return ok
}

// Count returns the number of groups.
func (l *Lookup[K, T]) Count() int { return len(l.keys) }

// Len returns the total number of elements across all groups.
func (l *Lookup[K, T]) Len() int {
	n := 0
	for _, items := range l.groups {
		n += len(items)
	}
	return n
}

// Each calls fn(key, items) for every group in first-seen key order.
func (l *Lookup[K, T]) Each(fn func(K, []T)) {
	for _, k := range l.keys {
		fn(k, l.Group(k))
	}
}

// ToMap returns the groups as a plain map. Key order is lost; use
// [Lookup.Keys] or [Lookup.Each] when order matters.
func (l *Lookup[K, T]) ToMap() map[K][]T {
	out := make(map[K][]T, len(l.groups))
	for k := range l.groups {
		out[k] = l.Group(k)
	}
	return out
}

// GroupBy partitions items by the key extracted by fn.
//
// Every element lands in exactly one group. The resulting [Lookup] preserves
// first-seen key order and in-group element order.
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Lookup[K, T] {
	lk := &Lookup[K, T]{groups: make(map[K][]T)}
	for _, item := range items {
		k := fn(item)
		if _, ok := lk.groups[k]; !ok {
			lk.keys = append(lk.keys, k)
		}
		lk.groups[k] = append(lk.groups[k], item)
	}
	return lk
}

// ToDictionary builds a map keyed by fn with one element per key.
// Returns an error wrapping [ErrDuplicateKey] when two elements share a key.
func ToDictionary[T any, K comparable](items []T, fn func(T) K) (map[K]T, error) {
	out := make(map[K]T, len(items))
	for _, item := range items {
		k := fn(item)
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		out[k] = item
	}
	return out, nil
}
