package linq_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/hasbyte1/go-linq-utils/linq"
)

func TestSelect(t *testing.T) {
	got := linq.Select([]int{1, 2, 3}, func(n, _ int) string { return strconv.Itoa(n * 2) })
	assertSlice(t, got, []string{"2", "4", "6"})
}

func TestSelectIndex(t *testing.T) {
	got := linq.Select([]string{"a", "b"}, func(s string, i int) string {
		return strconv.Itoa(i) + s
	})
	assertSlice(t, got, []string{"0a", "1b"})
}

func TestSelectEmpty(t *testing.T) {
	got := linq.Select([]int{}, func(n, _ int) int { return n })
	assertSlice(t, got, []int{})
}

func TestSelectMany(t *testing.T) {
	got := linq.SelectMany([]string{"hello world", "foo bar"}, func(s string, _ int) []string {
		return strings.Fields(s)
	})
	assertSlice(t, got, []string{"hello", "world", "foo", "bar"})
}

func TestSelectManyEmptyParts(t *testing.T) {
	got := linq.SelectMany([]int{1, 2, 3}, func(n, _ int) []int {
		if n == 2 {
			return nil
		}
		return []int{n, n}
	})
	assertSlice(t, got, []int{1, 1, 3, 3})
}

func TestZip(t *testing.T) {
	got := linq.Zip([]string{"a", "b", "c"}, []int{1, 2, 3}, func(s string, n int) string {
		return s + strconv.Itoa(n)
	})
	assertSlice(t, got, []string{"a1", "b2", "c3"})
}

func TestZipStopsAtShorter(t *testing.T) {
	got := linq.Zip([]int{1, 2, 3, 4}, []int{10, 20}, func(a, b int) int { return a + b })
	assertSlice(t, got, []int{11, 22})
}
