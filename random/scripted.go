package random

import "fmt"

// ScriptedSource replays a fixed script of draw results. It exists for
// tests: injecting a scripted source into a shuffle fixes the resulting
// permutation, so assertions can name exact expected output.
//
// The source fails loudly instead of improvising — requesting more draws
// than the script holds, or hitting a scripted value outside the requested
// bound, panics with a wrapped sentinel. A test that consumes the script
// differently than expected breaks immediately rather than passing by
// accident.
//
// ScriptedSource is not safe for concurrent use.
type ScriptedSource struct {
	values []int
	pos    int
}

// NewScripted returns a source that replays values in order.
//
// Scripting a shuffle: [Source.Shuffle] runs Fisher–Yates from the top
// index down, so shuffling n elements consumes n-1 values, the i-th drawn
// with bound i+1 counting down from n-1. The identity script for three
// elements is NewScripted(2, 1).
func NewScripted(values ...int) *ScriptedSource {
	return &ScriptedSource{values: append([]int(nil), values...)}
}

// IntN returns the next scripted value.
//
// It panics with a value wrapping [ErrInvalidBound] if n <= 0,
// [ErrScriptExhausted] if the script has no values left, or
// [ErrScriptValue] if the next value falls outside [0, n).
func (s *ScriptedSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%w: IntN(%d)", ErrInvalidBound, n))
	}
	if s.pos >= len(s.values) {
		panic(fmt.Errorf("%w: draw %d of a %d-value script",
			ErrScriptExhausted, s.pos+1, len(s.values)))
	}
	v := s.values[s.pos]
	if v < 0 || v >= n {
		panic(fmt.Errorf("%w: value %d at position %d for bound %d",
			ErrScriptValue, v, s.pos, n))
	}
	s.pos++
	return v
}

// Shuffle randomises the order of n elements through swap, consuming n-1
// scripted values.
func (s *ScriptedSource) Shuffle(n int, swap func(i, j int)) {
	shuffle(n, s.IntN, swap)
}

// Remaining reports how many scripted values are left unconsumed. Tests
// can assert it reaches zero to prove the code under test drew exactly as
// often as expected.
func (s *ScriptedSource) Remaining() int { return len(s.values) - s.pos }

// Reset rewinds the script to its first value.
func (s *ScriptedSource) Reset() { s.pos = 0 }
