// Package enumerable provides a generic, fluent sequence type built on the
// operators from the linq package.
//
// # Overview
//
// The central type is [Enumerable][T], a generic wrapper around a slice of T
// that exposes the query operators as a chainable API:
//
//	result := enumerable.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
//	    Where(func(n, _ int) bool { return n%2 == 0 }).
//	    SortByDesc(func(n int) float64 { return float64(n) }).
//	    Take(3).
//	    ToSlice() // → [10 8 6]
//
// # Immutability
//
// All transformation methods return a *new* Enumerable, leaving the original
// unchanged. This makes Enumerable values safe to pass across goroutines
// without locking and avoids accidental aliasing bugs in pipelines.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	squares := enumerable.Select(enumerable.Of(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * n) })
//
//	byDept := enumerable.GroupBy(people,
//	    func(p Person) string { return p.Dept })
//
// Package-level functions: [Select], [SelectMany], [Aggregate], [GroupBy],
// [Join], [Zip], [Min], [Max], [Sum], [Average], [ToDictionary].
//
// # Semantics
//
// Every method shares its semantics with the corresponding linq function:
// comma-ok returns for absent elements, errors for data-dependent failures,
// and panics wrapping the linq sentinels for malformed arguments such as
// negative counts. See the linq package documentation for the full contract.
//
// # Portability
//
// The method names follow .NET's System.Linq.Enumerable where Go method
// sets allow. Differences are noted per method; the largest is that
// materialisation is explicit (ToSlice) rather than deferred, so every
// operator executes eagerly exactly once.
package enumerable
