// Package typetag keeps a global registry of named runtime type checks for
// filtering sequences whose element types the static type system cannot
// express.
//
// A statically typed OfType filter covers []any holding ordinary Go values.
// Decoded JSON, mixed payload queues, and document streams often carry their
// variant in the data instead — a discriminator field, a capability, a shape
// only inspectable at runtime. Register a [Checker] under a tag once, then
// filter any sequence by that tag:
//
//	typetag.Register("invoice", typetag.Kind("type", "invoice"))
//
//	invoices, err := typetag.OfTag(docs, "invoice")
//
// # Registry semantics
//
// The registry is package-level and safe for concurrent use. Registering a
// tag that already exists replaces it. [Flush] empties the registry and is
// intended for tests.
package typetag

import (
	"fmt"
	"sort"
	"sync"
)

// Checker reports whether a value belongs to the tagged kind.
//
// Checkers receive the element as an any. They must not mutate it and must
// be safe for concurrent use once registered.
type Checker func(v any) bool

// registry is the package-level, goroutine-safe checker store.
var registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

func init() {
	registry.checkers = make(map[string]Checker)
}

// Register adds a named checker to the global registry. If a checker with
// that tag already exists it is replaced. Safe to call from multiple
// goroutines.
//
// Returns [ErrEmptyTag] if tag is empty and [ErrNilChecker] if fn is nil.
func Register(tag string, fn Checker) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if fn == nil {
		return ErrNilChecker
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.checkers[tag] = fn
	return nil
}

// Has reports whether a checker is registered under tag.
func Has(tag string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.checkers[tag]
	return ok
}

// Names returns the registered tags in sorted order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.checkers))
	for tag := range registry.checkers {
		names = append(names, tag)
	}
	sort.Strings(names)
	return names
}

// Flush removes all registered checkers.
// Intended for use in tests.
func Flush() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.checkers = make(map[string]Checker)
}

// Check runs the checker registered under tag against v.
// Returns (false, ErrTagNotFound) if no checker is registered under tag.
func Check(tag string, v any) (bool, error) {
	fn, err := lookup(tag)
	if err != nil {
		return false, err
	}
	return fn(v), nil
}

// OfTag returns the elements of items accepted by the checker registered
// under tag, preserving input order. The input is never modified.
//
// Returns (nil, ErrTagNotFound) if no checker is registered under tag.
func OfTag[T any](items []T, tag string) ([]T, error) {
	fn, err := lookup(tag)
	if err != nil {
		return nil, err
	}
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if fn(any(item)) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Checker constructors
// ─────────────────────────────────────────────────────────────────────────────

// Kind builds a checker that accepts map[string]any documents whose
// discriminator field equals want:
//
//	typetag.Register("invoice", typetag.Kind("type", "invoice"))
//
// Values that are not map[string]any, lack the field, or hold a non-string
// value under it are rejected.
func Kind(field, want string) Checker {
	return func(v any) bool {
		doc, ok := v.(map[string]any)
		if !ok {
			return false
		}
		got, ok := doc[field].(string)
		return ok && got == want
	}
}

// IsType builds a checker from a static type assertion, accepting values
// whose dynamic type is U (or implements U when U is an interface):
//
//	typetag.Register("stringer", typetag.IsType[fmt.Stringer]())
func IsType[U any]() Checker {
	return func(v any) bool {
		_, ok := v.(U)
		return ok
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

func lookup(tag string) (Checker, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	fn, ok := registry.checkers[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTagNotFound, tag)
	}
	return fn, nil
}
