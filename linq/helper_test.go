package linq_test

import (
	"errors"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// assertPanicsIs fails unless fn panics with an error matching target.
func assertPanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic error = %v; want errors.Is(%v)", err, target)
		}
	}()
	fn()
}

type user struct {
	Name string
	Age  int
	Dept string
}

var staff = []user{
	{Name: "Ana", Age: 34, Dept: "ops"},
	{Name: "Ben", Age: 29, Dept: "dev"},
	{Name: "Cai", Age: 34, Dept: "dev"},
	{Name: "Dee", Age: 41, Dept: "ops"},
}
