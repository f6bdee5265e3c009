package linq_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-linq-utils/linq"
)

func TestCount(t *testing.T) {
	if got := linq.Count([]int{1, 2, 3}); got != 3 {
		t.Fatalf("Count = %d; want 3", got)
	}
	if got := linq.Count([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 }); got != 2 {
		t.Fatalf("Count with predicate = %d; want 2", got)
	}
	if got := linq.Count([]int{}); got != 0 {
		t.Fatalf("Count empty = %d; want 0", got)
	}
}

func TestAggregate(t *testing.T) {
	sum := linq.Aggregate([]int{1, 2, 3, 4, 5}, func(acc, n, _ int) int { return acc + n }, 0)
	if sum != 15 {
		t.Fatalf("Aggregate sum = %d; want 15", sum)
	}
}

func TestAggregateEmptyReturnsSeed(t *testing.T) {
	got := linq.Aggregate([]int{}, func(acc, n, _ int) int { return acc + n }, 42)
	if got != 42 {
		t.Fatalf("Aggregate on empty = %d; want seed 42", got)
	}
}

func TestAggregateChangesType(t *testing.T) {
	got := linq.Aggregate([]int{1, 2, 3}, func(acc string, n, i int) string {
		if i > 0 {
			acc += "-"
		}
		return acc + strconv.Itoa(n)
	}, "")
	if got != "1-2-3" {
		t.Fatalf("Aggregate = %q; want 1-2-3", got)
	}
}

func TestSum(t *testing.T) {
	if got := linq.Sum([]int{1, 2, 3, 4, 5}, func(n int) int { return n }); got != 15 {
		t.Fatalf("Sum = %d; want 15", got)
	}
	got := linq.Sum(staff, func(u user) int { return u.Age })
	if got != 138 {
		t.Fatalf("Sum ages = %d; want 138", got)
	}
}

func TestSumFloat(t *testing.T) {
	got := linq.Sum([]float64{0.5, 1.5, 2}, func(f float64) float64 { return f })
	if got != 4 {
		t.Fatalf("Sum floats = %f; want 4", got)
	}
}

func TestSumEmpty(t *testing.T) {
	if got := linq.Sum([]int{}, func(n int) int { return n }); got != 0 {
		t.Fatalf("Sum empty = %d; want 0", got)
	}
}

func TestAverage(t *testing.T) {
	got, err := linq.Average([]int{1, 2, 3, 4, 5}, func(n int) int { return n })
	if err != nil || got != 3 {
		t.Fatalf("Average = %f, %v; want 3, nil", got, err)
	}
}

func TestAverageEmpty(t *testing.T) {
	_, err := linq.Average([]int{}, func(n int) int { return n })
	if !errors.Is(err, linq.ErrEmptySequence) {
		t.Fatalf("Average empty = %v; want ErrEmptySequence", err)
	}
}

func TestMax(t *testing.T) {
	type box struct{ V int }
	got, err := linq.Max([]box{{1}, {2}, {3}}, func(b box) int { return b.V })
	if err != nil || got != 3 {
		t.Fatalf("Max = %v, %v; want 3, nil", got, err)
	}
}

func TestMaxEmpty(t *testing.T) {
	_, err := linq.Max([]int{}, func(n int) int { return n })
	if !errors.Is(err, linq.ErrEmptySequence) {
		t.Fatalf("Max empty = %v; want ErrEmptySequence", err)
	}
}

func TestMin(t *testing.T) {
	got, err := linq.Min([]int{3, 1, 4, 1, 5}, func(n int) int { return n })
	if err != nil || got != 1 {
		t.Fatalf("Min = %v, %v; want 1, nil", got, err)
	}
	_, err = linq.Min([]string{}, func(s string) string { return s })
	if !errors.Is(err, linq.ErrEmptySequence) {
		t.Fatalf("Min empty = %v; want ErrEmptySequence", err)
	}
}

func TestMinByMaxBy(t *testing.T) {
	youngest, err := linq.MinBy(staff, func(u user) int { return u.Age })
	if err != nil || youngest.Name != "Ben" {
		t.Fatalf("MinBy = %v, %v; want Ben", youngest, err)
	}
	oldest, err := linq.MaxBy(staff, func(u user) int { return u.Age })
	if err != nil || oldest.Name != "Dee" {
		t.Fatalf("MaxBy = %v, %v; want Dee", oldest, err)
	}
}

func TestMaxByFirstOnTies(t *testing.T) {
	// Ana and Cai share age 34; the first encountered wins.
	got, err := linq.MaxBy(staff[:3], func(u user) int { return u.Age })
	if err != nil || got.Name != "Ana" {
		t.Fatalf("MaxBy tie = %v, %v; want Ana", got, err)
	}
}

func TestMinByEmpty(t *testing.T) {
	_, err := linq.MinBy([]user{}, func(u user) int { return u.Age })
	if !errors.Is(err, linq.ErrEmptySequence) {
		t.Fatalf("MinBy empty = %v; want ErrEmptySequence", err)
	}
}
