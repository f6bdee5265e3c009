// Package keypath builds selectors and predicates over nested
// map[string]any documents using dot-separated key paths.
//
// Sequence operations take key selector and predicate callbacks. When the
// elements are decoded JSON or similar dynamic documents, those callbacks
// reduce to "read this path" — keypath builds them:
//
//	docs := []map[string]any{
//	    {"user": map[string]any{"name": "Ana", "age": 34.0}},
//	    {"user": map[string]any{"name": "Ben", "age": 29.0}},
//	}
//
//	byName := linq.OrderBy(docs, keypath.String("user.name"))
//	ages   := linq.Sum(docs, keypath.Number("user.age"))
//	adults := linq.Count(docs, keypath.Exists("user.age"))
//
// # Lookup semantics
//
// A path is a chain of map keys separated by dots. Traversal stops with a
// miss when a segment is absent or when an intermediate value is not a
// map[string]any. [Get] exposes the raw comma-ok lookup; the selector
// builders fold a miss into the selector's zero value so sequence
// operations keep their non-error shape.
//
// # Flattening
//
// [Flatten] projects a nested document into a single-level map with
// dot-notation keys, useful for turning document sequences into flat rows
// before grouping or joining.
package keypath
