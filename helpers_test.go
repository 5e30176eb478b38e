package textbookrsa

import (
	"errors"
	"io"
	"math/big"
	"sync"
	"testing"
)

// scriptedPrimes replays a fixed sequence of primes, ignoring the reader.
type scriptedPrimes struct {
	mu     sync.Mutex
	values []int64
	calls  int
	fail   error
}

func (s *scriptedPrimes) Generate(io.Reader, int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fail != nil {
		return nil, s.fail
	}
	if s.calls >= len(s.values) {
		return nil, errors.New("script exhausted")
	}
	p := big.NewInt(s.values[s.calls])
	s.calls++
	return p, nil
}

func (s *scriptedPrimes) IsPrime(n *big.Int) bool {
	return n.ProbablyPrime(20)
}

// wikipediaKeyPair returns the n = 61*53 pair. 917519 - 1 is a multiple of
// 65537, so the first attempt is rejected and the second one is used.
func wikipediaKeyPair(t *testing.T) (*KeyPair, *Factors) {
	t.Helper()

	g, err := NewGenerator(WithPrimeSource(&scriptedPrimes{values: []int64{917519, 1310741, 61, 53}}))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	kp, f, err := g.Generate(t.Context())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return kp, f
}

var (
	fullSizeOnce    sync.Once
	fullSizeKeys    *KeyPair
	fullSizeFactors *Factors
	fullSizeErr     error
)

// fullSizeKeyPair returns a shared key pair with the default 1024-bit primes.
func fullSizeKeyPair(t *testing.T) (*KeyPair, *Factors) {
	t.Helper()

	fullSizeOnce.Do(func() {
		g, err := NewGenerator()
		if err != nil {
			fullSizeErr = err
			return
		}
		fullSizeKeys, fullSizeFactors, fullSizeErr = g.Generate(t.Context())
	})
	if fullSizeErr != nil {
		t.Fatalf("generate full-size key pair: %v", fullSizeErr)
	}
	return fullSizeKeys, fullSizeFactors
}

// seededKeyPair returns a reproducible key pair with small primes.
func seededKeyPair(t *testing.T, seed string, bits int) *KeyPair {
	t.Helper()

	kp, err := GenerateKeys(WithSeed([]byte(seed)), WithPrimeBits(bits))
	if err != nil {
		t.Fatalf("GenerateKeys(seed=%q, bits=%d) error = %v", seed, bits, err)
	}
	return kp
}
