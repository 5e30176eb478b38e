package primes

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	mathrand "math/rand/v2"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func seeded(b byte) io.Reader {
	var seed [32]byte
	seed[0] = b
	return mathrand.NewChaCha8(seed)
}

func TestGenerate_BitLength(t *testing.T) {
	src := NewProbablePrimes()

	for _, bits := range []int{2, 3, 8, 9, 16, 64, 127, 256, 512} {
		p, err := src.Generate(rand.Reader, bits)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", bits, err)
		}
		if p.BitLen() != bits {
			t.Errorf("Generate(%d) bit length = %d", bits, p.BitLen())
		}
		if !src.IsPrime(p) {
			t.Errorf("Generate(%d) = %s is not prime", bits, p)
		}
	}
}

func TestGenerate_TopTwoBitsSet(t *testing.T) {
	src := NewProbablePrimes()

	for _, bits := range []int{16, 17, 64, 256} {
		p, err := src.Generate(rand.Reader, bits)
		if err != nil {
			t.Fatalf("Generate(%d) error = %v", bits, err)
		}
		if p.Bit(bits-1) != 1 || p.Bit(bits-2) != 1 {
			t.Errorf("Generate(%d) = %x, top two bits not set", bits, p)
		}

		// Product of two such primes has exactly 2*bits bits.
		q, err := src.Generate(rand.Reader, bits)
		if err != nil {
			t.Fatal(err)
		}
		if n := new(big.Int).Mul(p, q); n.BitLen() != 2*bits {
			t.Errorf("modulus bit length = %d, want %d", n.BitLen(), 2*bits)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	src := NewProbablePrimes()

	p1, err := src.Generate(seeded(7), 256)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := src.Generate(seeded(7), 256)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Cmp(p2) != 0 {
		t.Errorf("same reader produced different primes: %s vs %s", p1, p2)
	}

	p3, err := src.Generate(seeded(8), 256)
	if err != nil {
		t.Fatal(err)
	}
	if p1.Cmp(p3) == 0 {
		t.Error("different seeds produced the same prime")
	}
}

func TestGenerate_InvalidBits(t *testing.T) {
	src := NewProbablePrimes()
	for _, bits := range []int{-1, 0, 1} {
		if _, err := src.Generate(rand.Reader, bits); !errors.Is(err, ErrInvalidBits) {
			t.Errorf("Generate(%d) error = %v, want ErrInvalidBits", bits, err)
		}
	}
}

func TestGenerate_ReaderFailure(t *testing.T) {
	_, err := NewProbablePrimes().Generate(errReader{}, 64)
	if err == nil {
		t.Fatal("expected error from failing reader")
	}
	if errors.Is(err, ErrNoPrimeFound) {
		t.Errorf("reader failure reported as exhaustion: %v", err)
	}

	if _, err := NewProbablePrimes().Generate(nil, 64); err == nil {
		t.Error("expected error for nil reader")
	}
}

func TestGenerate_BudgetExhausted(t *testing.T) {
	// An all-zero stream always yields 0xC001 = 13 * 3781.
	_, err := NewProbablePrimes().Generate(zeroReader{}, 16)
	if !errors.Is(err, ErrNoPrimeFound) {
		t.Errorf("error = %v, want ErrNoPrimeFound", err)
	}
}

func TestIsPrime(t *testing.T) {
	src := &ProbablePrimes{}

	tests := []struct {
		n    int64
		want bool
	}{
		{2, true},
		{3, true},
		{53, true},
		{61, true},
		{65537, true},
		{917519, true},
		{1, false},
		{0, false},
		{-7, false},
		{49153, false},
		{3233, false},
	}

	for _, tt := range tests {
		if got := src.IsPrime(big.NewInt(tt.n)); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
	if src.IsPrime(nil) {
		t.Error("IsPrime(nil) = true")
	}
}

func BenchmarkGenerate1024(b *testing.B) {
	src := NewProbablePrimes()
	for i := 0; i < b.N; i++ {
		if _, err := src.Generate(rand.Reader, 1024); err != nil {
			b.Fatal(err)
		}
	}
}
