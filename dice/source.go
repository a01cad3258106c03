package dice

import (
	"crypto/rand"
	"math/big"
	randv2 "math/rand/v2"
)

// Source is the randomness provider rollers draw from. The library treats
// it as a black box and never validates its distribution.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: all values produced are uniformly distributed in [0, n) for
// any n > 0. Safe for concurrent use.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use by multiple goroutines.
//
// Postcondition: every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
// Panics with "dice: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// seededSource implements Source using a PCG generator with a fixed seed,
// for reproducible rolls.
type seededSource struct {
	rng *randv2.Rand
}

// NewSeededSource returns a deterministic Source: the same seed always
// produces the same draw sequence. NOT safe for concurrent use; give each
// goroutine its own source or serialize access externally.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: randv2.New(randv2.NewPCG(seed, seed))}
}

// Intn returns a pseudo-random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	return s.rng.IntN(n)
}
