package textbookrsa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
	"github.com/vaultsandbox/textbook-rsa/internal/numtheory"
)

var publicExponent = big.NewInt(PublicExponent)

// Generator produces RSA key pairs. It is safe for concurrent use; calls to
// Generate are serialized because they share one random reader.
type Generator struct {
	cfg    generatorConfig
	random io.Reader
	mu     sync.Mutex
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	random := cfg.random
	if cfg.seeded {
		r, err := crypto.NewSeededReader(cfg.seed)
		if err != nil {
			return nil, fmt.Errorf("seeded reader: %w", err)
		}
		random = r
	}
	if random == nil {
		random = crypto.Random()
	}

	return &Generator{cfg: cfg, random: random}, nil
}

// GenerateKeys generates a key pair with a fresh Generator.
func GenerateKeys(opts ...Option) (*KeyPair, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	kp, _, err := g.Generate(context.Background())
	return kp, err
}

// Generate draws two primes, builds n and φ(n) and derives d as the inverse
// of PublicExponent modulo φ(n). It returns the key pair together with the
// primes it was built from.
//
// If the exponent is not invertible, or both primes coincide, the primes are
// discarded and the attempt repeated. After the configured number of attempts
// a *KeyConstructionError is returned. Prime source failures are returned
// immediately as a *PrimeGenerationError. ctx is checked between attempts.
func (g *Generator) Generate(ctx context.Context) (*KeyPair, *Factors, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	log := g.cfg.logger
	bits := g.cfg.primeBits

	var lastErr error
	for attempt := 1; attempt <= g.cfg.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		log.Debug("generating primes", "attempt", attempt, "bits", bits)

		p, err := g.prime("p", attempt)
		if err != nil {
			return nil, nil, err
		}
		q, err := g.prime("q", attempt)
		if err != nil {
			return nil, nil, err
		}

		if p.Cmp(q) == 0 {
			lastErr = errors.New("p and q are equal")
			log.Warn("primes coincide, regenerating", "attempt", attempt)
			continue
		}

		factors := &Factors{P: p, Q: q}
		phi := factors.Totient()

		d, ok := numtheory.ModInverse(publicExponent, phi)
		if !ok {
			lastErr = fmt.Errorf("public exponent %d not invertible modulo phi(n)", PublicExponent)
			log.Warn("public exponent not invertible, regenerating primes", "attempt", attempt)
			continue
		}

		kp := &KeyPair{
			pub: PublicKey{e: new(big.Int).Set(publicExponent), n: factors.Modulus()},
			d:   d,
		}
		log.Info("generated key pair",
			"modulus_bits", kp.pub.n.BitLen(),
			"attempts", attempt,
			"fingerprint", kp.pub.Fingerprint(),
		)
		return kp, factors, nil
	}

	return nil, nil, &KeyConstructionError{Attempts: g.cfg.maxAttempts, Err: lastErr}
}

// prime draws one prime and checks it independently before use.
func (g *Generator) prime(name string, attempt int) (*big.Int, error) {
	p, err := g.cfg.primes.Generate(g.random, g.cfg.primeBits)
	if err != nil {
		return nil, &PrimeGenerationError{Prime: name, Attempt: attempt, Err: err}
	}
	if !g.cfg.primes.IsPrime(p) {
		return nil, &PrimeGenerationError{Prime: name, Attempt: attempt, Err: errors.New("candidate failed primality check")}
	}
	g.cfg.logger.Debug("prime ready", "prime", name, "bits", p.BitLen())
	return p, nil
}

// ModularInverse returns d with a*d ≡ 1 (mod m) and 0 <= d < m, or false
// when gcd(a, m) != 1 or m <= 1.
func ModularInverse(a, m *big.Int) (*big.Int, bool) {
	return numtheory.ModInverse(a, m)
}
