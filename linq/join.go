package linq

// Join correlates the elements of outer and inner on matching keys and emits
// result(outerElement, innerElement) for every matched pair.
//
// This is an inner join: an outer element with no matching inner element
// contributes zero rows. Output order is outer-major, inner-minor: for each
// outer element in sequence order, all matching inner elements in theirs.
func Join[O, I any, K comparable, R any](
	outer []O,
	inner []I,
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) []R {
	index := make(map[K][]I, len(inner))
	for _, in := range inner {
		k := innerKey(in)
		index[k] = append(index[k], in)
	}
	out := make([]R, 0)
	for _, o := range outer {
		for _, in := range index[outerKey(o)] {
			out = append(out, result(o, in))
		}
	}
	return out
}

// GroupJoin correlates outer and inner on matching keys and emits
// result(outerElement, matchingInnerElements) once per outer element, in
// outer sequence order. Outer elements with no match receive an empty group.
func GroupJoin[O, I any, K comparable, R any](
	outer []O,
	inner []I,
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, []I) R,
) []R {
	index := make(map[K][]I, len(inner))
	for _, in := range inner {
		k := innerKey(in)
		index[k] = append(index[k], in)
	}
	out := make([]R, 0, len(outer))
	for _, o := range outer {
		group := index[outerKey(o)]
		if group == nil {
			group = []I{}
		}
		out = append(out, result(o, group))
	}
	return out
}
