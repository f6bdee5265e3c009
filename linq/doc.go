// Package linq provides standalone, framework-agnostic query operators for
// Go slices, inspired by .NET's System.Linq Enumerable methods.
//
// # Operators
//
// All operators are generic (Go 1.18+) and operate on plain []T values — no
// wrapper type required. Every operator returns a fresh slice or scalar and
// never mutates its input:
//
//	evens := linq.Where([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	names := linq.Select(users, func(u User, _ int) string { return u.Name })
//	byAge := linq.OrderBy(users, func(u User) int { return u.Age })
//	linq.Range(1, 3) // → [1 2 3]
//
// For a chainable wrapper type over the same operators, see this module's
// enumerable package.
//
// # Absent elements
//
// Element operators (First, Last, Single, ElementAt) report absence through a
// boolean, never through an error or a zero value alone:
//
//	v, ok := linq.First(orders, func(o Order) bool { return o.Open })
//
// The OrDefault variants substitute the supplied fallback only when no
// element matches. A matching element is always returned as-is, even when it
// equals the zero value:
//
//	linq.FirstOrDefault([]int{0, 2, 3}, func(n int) bool { return n == 0 }, 99) // → 0
//
// # Errors and panics
//
// Data-dependent failures are returned as errors and compare with
// [errors.Is]: [ErrEmptySequence] from Min/Max/MinBy/MaxBy/Average,
// [ErrMultipleMatches] from Single, [ErrDuplicateKey] from ToDictionary.
//
// Malformed calls are programmer errors and panic with an error wrapping the
// matching sentinel: a negative count for Skip/Take/Range/Repeat
// ([ErrNegativeCount]), a non-positive size for Chunk ([ErrInvalidChunkSize]).
//
// # Ordering guarantees
//
// OrderBy and OrderByDescending are stable: elements with equal keys keep
// their original relative order. Distinct keeps first occurrences in
// first-occurrence order. GroupBy returns a [Lookup] that preserves
// first-seen key order and in-group element order. Join output is
// outer-major, inner-minor.
//
// # Randomness
//
// Shuffle produces a uniform Fisher–Yates permutation from the process-wide
// source. ShuffleWith accepts any [Shuffler] — a seeded *rand.Rand, or a
// deterministic source from this module's random package — so tests can fix
// the permutation.
//
// # Portability
//
// The operators follow the standard query-operator vocabulary
// (where/select/order/group/join) and translate directly to C# LINQ,
// JavaScript array methods, and Java streams without Go-specific idioms.
package linq
