package textbookrsa

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrPrimeGeneration is returned when the prime source cannot produce a
	// valid prime. Generation may be retried by the caller.
	ErrPrimeGeneration = errors.New("prime generation failed")

	// ErrKeyConstruction is returned when no invertible public exponent was
	// found within the configured number of attempts.
	ErrKeyConstruction = errors.New("key construction failed")

	// ErrInvalidKey is returned when key material is out of range.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMessageTooLarge is returned when a message encodes to an integer >= n.
	ErrMessageTooLarge = errors.New("message too large for modulus")

	// ErrDigestTooLarge is returned when a digest encodes to an integer >= n,
	// which only happens with moduli smaller than the digest.
	ErrDigestTooLarge = errors.New("digest too large for modulus")

	// ErrUnsupportedHash is returned when a hash algorithm is not supported.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// Error is implemented by all typed errors in this package.
type Error interface {
	error
	TextbookRSAError() // marker method
}

// PrimeGenerationError reports a failure to obtain a usable prime.
type PrimeGenerationError struct {
	Prime   string // "p" or "q"
	Attempt int
	Err     error
}

func (e *PrimeGenerationError) Error() string {
	return fmt.Sprintf("generate prime %s (attempt %d): %v", e.Prime, e.Attempt, e.Err)
}

// Unwrap returns the underlying error.
func (e *PrimeGenerationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PrimeGenerationError) Is(target error) bool {
	return target == ErrPrimeGeneration
}

// TextbookRSAError implements the Error interface.
func (e *PrimeGenerationError) TextbookRSAError() {}

// KeyConstructionError reports that every attempt produced primes for which
// the public exponent had no inverse modulo φ(n).
type KeyConstructionError struct {
	Attempts int
	Err      error
}

func (e *KeyConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("key construction failed after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("key construction failed after %d attempts", e.Attempts)
}

// Unwrap returns the underlying error.
func (e *KeyConstructionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyConstructionError) Is(target error) bool {
	return target == ErrKeyConstruction
}

// TextbookRSAError implements the Error interface.
func (e *KeyConstructionError) TextbookRSAError() {}

// OptionError reports an invalid option value.
type OptionError struct {
	Option  string
	Message string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// TextbookRSAError implements the Error interface.
func (e *OptionError) TextbookRSAError() {}
