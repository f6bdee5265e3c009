package random

import "errors"

// Sentinel errors wrapped into the panics raised by sources in this package.
// Recovered values satisfy errors.Is against these.
var (
	// ErrInvalidBound is wrapped into the panic raised by IntN when the
	// bound is zero or negative.
	ErrInvalidBound = errors.New("random: bound must be positive")

	// ErrScriptExhausted is wrapped into the panic raised by a scripted
	// source when more draws are requested than the script holds.
	ErrScriptExhausted = errors.New("random: script exhausted")

	// ErrScriptValue is wrapped into the panic raised by a scripted source
	// when the next scripted value falls outside the requested bound.
	ErrScriptValue = errors.New("random: script value out of range")

	// ErrEntropyUnavailable is wrapped into the panic raised by the crypto
	// source when the operating system's randomness source fails.
	ErrEntropyUnavailable = errors.New("random: entropy source unavailable")
)
