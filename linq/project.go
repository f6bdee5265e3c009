package linq

// Select applies fn(item, index) to every element and returns the projected
// sequence, 1:1 and order preserved.
func Select[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// SelectMany applies fn to every element (producing a []U per element) and
// flattens the results into a single sequence.
func SelectMany[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Zip combines two sequences element-by-element through fn, stopping at the
// shorter of the two.
func Zip[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a[i], b[i])
	}
	return out
}
