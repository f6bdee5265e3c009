package linq

import "errors"

// Sentinel errors raised by sequence operations.
//
// Operations that fail because of the data they are given (an empty sequence
// where an extremum is undefined, more than one match where exactly one is
// required) return these as ordinary error values. Operations that fail
// because the call itself is malformed (a negative count, a non-positive
// chunk size) panic with an error wrapping the sentinel, so a recovered
// panic value still satisfies [errors.Is].
var (
	// ErrEmptySequence is returned by Min, Max, MinBy, MaxBy, and Average
	// when the sequence contains no elements.
	ErrEmptySequence = errors.New("linq: operation on empty sequence")

	// ErrMultipleMatches is returned by Single when more than one element
	// satisfies the predicate.
	ErrMultipleMatches = errors.New("linq: more than one element matches")

	// ErrNegativeCount wraps the panic raised by Skip, Take, Range, and
	// Repeat when called with a negative count.
	ErrNegativeCount = errors.New("linq: negative count")

	// ErrInvalidChunkSize wraps the panic raised by Chunk when size <= 0.
	ErrInvalidChunkSize = errors.New("linq: invalid chunk size")

	// ErrDuplicateKey is returned by ToDictionary when two elements map to
	// the same key.
	ErrDuplicateKey = errors.New("linq: duplicate key")
)
