package primes

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// DefaultRounds is the number of Miller-Rabin rounds used by ProbablePrimes
// when Rounds is zero.
const DefaultRounds = 20

var (
	// ErrInvalidBits is returned when a prime of fewer than two bits is requested.
	ErrInvalidBits = errors.New("prime size must be at least 2 bits")

	// ErrNoPrimeFound is returned when the candidate budget is exhausted.
	ErrNoPrimeFound = errors.New("no prime found within candidate budget")
)

// Source generates and checks probable primes.
type Source interface {
	// Generate returns a prime of exactly bits bits using rand as the only
	// source of randomness.
	Generate(rand io.Reader, bits int) (*big.Int, error)
	// IsPrime reports whether n is prime with high probability.
	IsPrime(n *big.Int) bool
}

// ProbablePrimes is a Source backed by big.Int.ProbablyPrime.
type ProbablePrimes struct {
	// Rounds is the number of Miller-Rabin rounds. Zero means DefaultRounds.
	Rounds int
}

// NewProbablePrimes returns a ProbablePrimes source using DefaultRounds.
func NewProbablePrimes() *ProbablePrimes {
	return &ProbablePrimes{Rounds: DefaultRounds}
}

func (s *ProbablePrimes) rounds() int {
	if s == nil || s.Rounds <= 0 {
		return DefaultRounds
	}
	return s.Rounds
}

// maxCandidates bounds the search. Prime density near 2^bits is about
// 1/(bits*ln 2) and only odd candidates are drawn, so the expected number of
// draws is roughly 0.35*bits; the budget leaves a wide margin.
func maxCandidates(bits int) int {
	return 64*bits + 1024
}

// Generate returns a prime with exactly bits bits and its two top bits set,
// so that the product of two such primes has exactly 2*bits bits.
func (s *ProbablePrimes) Generate(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, ErrInvalidBits
	}
	if rand == nil {
		return nil, errors.New("nil random reader")
	}

	b := uint(bits % 8)
	if b == 0 {
		b = 8
	}
	buf := make([]byte, (bits+7)/8)
	p := new(big.Int)

	for i := 0; i < maxCandidates(bits); i++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("read prime candidate: %w", err)
		}

		// Clear bits in the first byte to make sure the candidate has
		// exactly bits bits.
		buf[0] &= uint8(int(1<<b) - 1)
		// Set the two top bits; for 2-bit candidates only one top bit exists.
		if b >= 2 {
			buf[0] |= 3 << (b - 2)
		} else {
			buf[0] |= 1
			if len(buf) > 1 {
				buf[1] |= 0x80
			}
		}
		// Odd candidates only.
		buf[len(buf)-1] |= 1

		p.SetBytes(buf)
		if p.ProbablyPrime(s.rounds()) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %d bits", ErrNoPrimeFound, bits)
}

// IsPrime reports whether n is a probable prime.
func (s *ProbablePrimes) IsPrime(n *big.Int) bool {
	if n == nil || n.Sign() <= 0 {
		return false
	}
	return n.ProbablyPrime(s.rounds())
}
