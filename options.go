package textbookrsa

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
	"github.com/vaultsandbox/textbook-rsa/internal/primes"
)

// HashAlgorithm names the digest applied to messages before signing.
type HashAlgorithm string

const (
	// HashSHA256 is SHA-256, the default.
	HashSHA256 HashAlgorithm = crypto.SHA256
	// HashSHA512 is SHA-512. Needs a modulus of more than 512 bits.
	HashSHA512 HashAlgorithm = crypto.SHA512
	// HashSHA3_256 is SHA3-256.
	HashSHA3_256 HashAlgorithm = crypto.SHA3_256
	// HashBLAKE2b256 is BLAKE2b with a 256-bit output.
	HashBLAKE2b256 HashAlgorithm = crypto.BLAKE2b256
	// HashSHAKE256 is SHAKE256 squeezed to 512 bits. Needs a modulus of more
	// than 512 bits.
	HashSHAKE256 HashAlgorithm = crypto.SHAKE256
)

const (
	// PublicExponent is the fixed public exponent e.
	PublicExponent = 65537

	// DefaultPrimeBits is the size of each prime, giving a 2048-bit modulus.
	DefaultPrimeBits = 1024

	// MinPrimeBits is the smallest prime size accepted by WithPrimeBits.
	MinPrimeBits = 16

	defaultMaxAttempts = 8
	defaultHash        = HashSHA256
)

// PrimeSource generates and checks probable primes. Implementations must
// draw all randomness from the reader passed to Generate.
type PrimeSource = primes.Source

// generatorConfig holds configuration for key generation.
type generatorConfig struct {
	primeBits   int
	random      io.Reader
	seed        []byte
	seeded      bool
	primes      PrimeSource
	maxAttempts int
	logger      *slog.Logger
}

// signConfig holds configuration for signers and verifiers.
type signConfig struct {
	hash HashAlgorithm
}

// Option configures key generation.
type Option func(*generatorConfig)

// SignOption configures a Signer or Verifier.
type SignOption func(*signConfig)

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		primeBits:   DefaultPrimeBits,
		maxAttempts: defaultMaxAttempts,
	}
}

// WithPrimeBits sets the size of each prime in bits. The modulus has twice
// as many bits.
// Default: 1024
func WithPrimeBits(bits int) Option {
	return func(c *generatorConfig) {
		c.primeBits = bits
	}
}

// WithRandom sets the random reader used for prime generation.
// It replaces any seed set with WithSeed.
// Default: crypto/rand.Reader
func WithRandom(r io.Reader) Option {
	return func(c *generatorConfig) {
		c.random = r
		c.seed = nil
		c.seeded = false
	}
}

// WithSeed makes generation deterministic: the same seed, prime size and
// prime source always produce the same key pair. Keys generated this way are
// only as secret as the seed.
// It replaces any reader set with WithRandom.
func WithSeed(seed []byte) Option {
	return func(c *generatorConfig) {
		c.seed = append([]byte(nil), seed...)
		c.seeded = true
		c.random = nil
	}
}

// WithPrimeSource sets the prime source. Each prime it returns must still
// pass the source's IsPrime check, but its size is not checked against
// WithPrimeBits: a custom source decides the bit length of p and q, and so
// of the modulus.
// Default: Miller-Rabin with 20 rounds plus Baillie-PSW (math/big).
func WithPrimeSource(src PrimeSource) Option {
	return func(c *generatorConfig) {
		c.primes = src
	}
}

// WithMaxAttempts sets how many prime pairs are tried before giving up when
// the public exponent is not invertible modulo φ(n).
// Default: 8
func WithMaxAttempts(n int) Option {
	return func(c *generatorConfig) {
		c.maxAttempts = n
	}
}

// WithLogger sets the logger for generation progress. Key material is never
// logged, only sizes, attempt counts and fingerprints.
// Default: discard
func WithLogger(logger *slog.Logger) Option {
	return func(c *generatorConfig) {
		c.logger = logger
	}
}

// WithHash sets the digest applied to messages before signing.
// Default: HashSHA256
func WithHash(h HashAlgorithm) SignOption {
	return func(c *signConfig) {
		c.hash = h
	}
}

// validate checks the configuration and fills in defaults for unset
// collaborators.
func (c *generatorConfig) validate() error {
	if c.primeBits < MinPrimeBits {
		return &OptionError{Option: "WithPrimeBits", Message: "prime size below minimum"}
	}
	if c.maxAttempts < 1 {
		return &OptionError{Option: "WithMaxAttempts", Message: "must be at least 1"}
	}
	if c.seeded && len(c.seed) == 0 {
		return &OptionError{Option: "WithSeed", Message: "seed must not be empty"}
	}

	if c.primes == nil {
		c.primes = primes.NewProbablePrimes()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return nil
}

// resolveDigest maps a hash algorithm to its digest implementation.
func resolveDigest(h HashAlgorithm) (crypto.Digest, error) {
	d, err := crypto.NewDigest(string(h))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHash, h)
	}
	return d, nil
}
