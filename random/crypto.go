package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// CryptoSource draws from the operating system's entropy pool via
// crypto/rand. Draws are unpredictable but not reproducible, so use it
// where permutations must resist guessing rather than in tests.
//
// The zero value is ready to use and safe for concurrent use.
type CryptoSource struct{}

// NewCrypto returns a crypto/rand-backed source.
func NewCrypto() CryptoSource { return CryptoSource{} }

// IntN returns a uniform random int in [0, n).
//
// Uniformity is preserved by rejection sampling: 64-bit draws that would
// bias the modulo reduction are discarded and redrawn.
//
// It panics with a value wrapping [ErrInvalidBound] if n <= 0, and with a
// value wrapping [ErrEntropyUnavailable] if the entropy pool read fails.
func (CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Errorf("%w: IntN(%d)", ErrInvalidBound, n))
	}
	bound := uint64(n)
	discard := -bound % bound // 2^64 mod bound
	var buf [8]byte
	for {
		if _, err := crand.Read(buf[:]); err != nil {
			panic(fmt.Errorf("%w: %v", ErrEntropyUnavailable, err))
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v >= discard {
			return int(v % bound)
		}
	}
}

// Shuffle randomises the order of n elements through swap.
func (s CryptoSource) Shuffle(n int, swap func(i, j int)) {
	shuffle(n, s.IntN, swap)
}
