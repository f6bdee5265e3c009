package keypath

import (
	"reflect"
	"strings"
)

// Get retrieves the value at the dot-notation path in doc.
// The second return value reports whether the full path resolved.
//
//	Get(doc, "user.address.city")  → "London", true
//	Get(doc, "user.missing")       → nil, false
func Get(doc map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := doc
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Selector builders
// ─────────────────────────────────────────────────────────────────────────────

// Selector builds a projection returning the raw value at path, or nil when
// the path does not resolve.
func Selector(path string) func(map[string]any) any {
	return func(doc map[string]any) any {
		v, _ := Get(doc, path)
		return v
	}
}

// String builds a key selector returning the string at path. A missing path
// or a non-string value yields "".
func String(path string) func(map[string]any) string {
	return func(doc map[string]any) string {
		v, ok := Get(doc, path)
		if !ok {
			return ""
		}
		s, _ := v.(string)
		return s
	}
}

// Number builds a key selector returning the value at path as a float64.
// Integer, unsigned, and float kinds are converted; a missing path or a
// non-numeric value yields 0.
//
// JSON decoding stores numbers as float64, so selectors over decoded JSON
// hit the float64 case directly.
func Number(path string) func(map[string]any) float64 {
	return func(doc map[string]any) float64 {
		v, ok := Get(doc, path)
		if !ok {
			return 0
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int8:
			return float64(n)
		case int16:
			return float64(n)
		case int32:
			return float64(n)
		case int64:
			return float64(n)
		case uint:
			return float64(n)
		case uint8:
			return float64(n)
		case uint16:
			return float64(n)
		case uint32:
			return float64(n)
		case uint64:
			return float64(n)
		default:
			return 0
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate builders
// ─────────────────────────────────────────────────────────────────────────────

// Exists builds a predicate reporting whether path resolves in a document.
func Exists(path string) func(map[string]any) bool {
	return func(doc map[string]any) bool {
		_, ok := Get(doc, path)
		return ok
	}
}

// Equals builds a predicate reporting whether the value at path deep-equals
// want. A document where the path does not resolve never matches, including
// for want == nil.
func Equals(path string, want any) func(map[string]any) bool {
	return func(doc map[string]any) bool {
		v, ok := Get(doc, path)
		return ok && reflect.DeepEqual(v, want)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flatten projects a nested document into a single-level map using dot
// notation for the keys. The input is never modified.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(doc map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto("", doc, out)
	return out
}

func flattenInto(prefix string, doc map[string]any, out map[string]any) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(key, nested, out)
		} else {
			out[key] = v
		}
	}
}
