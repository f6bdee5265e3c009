package enumerable_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-linq-utils/enumerable"
)

func ExampleOf() {
	e := enumerable.Of(1, 2, 3, 4, 5)
	fmt.Println(e.Count(), e.Sum(func(n int) float64 { return float64(n) }))
	// Output: 5 15
}

func ExampleEnumerable_Where() {
	result := enumerable.Of(1, 2, 3, 4, 5, 6).
		Where(func(n, _ int) bool { return n%2 == 0 }).
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleEnumerable_SortBy() {
	result := enumerable.Of(5, 3, 1, 4, 2).
		SortBy(func(n int) float64 { return float64(n) }).
		ToSlice()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleEnumerable_Chunk() {
	for _, chunk := range enumerable.Of(1, 2, 3, 4, 5).Chunk(2) {
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleSelect() {
	result := enumerable.Select(
		enumerable.Of(1, 2, 3),
		func(n, _ int) string { return strconv.Itoa(n * n) },
	)
	fmt.Println(result)
	// Output: ["1","4","9"]
}

func ExampleGroupBy() {
	words := enumerable.Of("go", "js", "rust", "ruby", "c")
	byLen := enumerable.GroupBy(words, func(w string) int { return len(w) })
	byLen.Each(func(n int, group []string) {
		fmt.Println(n, group)
	})
	// Output:
	// 2 [go js]
	// 4 [rust ruby]
	// 1 [c]
}

func ExampleZip() {
	keys := enumerable.Of("a", "b", "c")
	vals := enumerable.Of(1, 2, 3)
	pairs := enumerable.Zip(keys, vals)
	pairs.Each(func(p enumerable.Pair[string, int], _ int) {
		fmt.Printf("%s=%d\n", p.First, p.Second)
	})
	// Output:
	// a=1
	// b=2
	// c=3
}

func ExampleAggregate() {
	sum := enumerable.Aggregate(
		enumerable.Of(1, 2, 3, 4, 5),
		func(acc, n, _ int) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}

func ExampleEnumerable_When() {
	upperBound := 3
	result := enumerable.Of(1, 2, 3, 4, 5).
		When(upperBound > 0, func(e *enumerable.Enumerable[int]) *enumerable.Enumerable[int] {
			return e.Take(upperBound)
		}).
		ToSlice()
	fmt.Println(result)
	// Output: [1 2 3]
}
