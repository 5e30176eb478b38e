package textbookrsa

import (
	"fmt"
	"math/big"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

var bigOne = big.NewInt(1)

// PublicKey is the public half of an RSA key: exponent e and modulus n.
// The zero value is not usable; obtain keys from a Generator or NewPublicKey.
type PublicKey struct {
	e *big.Int
	n *big.Int
}

// NewPublicKey builds a public key from an exponent and modulus, e.g. to
// verify signatures made by someone else. It requires 1 < e < n.
func NewPublicKey(e, n *big.Int) (*PublicKey, error) {
	if e == nil || n == nil {
		return nil, fmt.Errorf("%w: missing exponent or modulus", ErrInvalidKey)
	}
	if n.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus must be greater than 1", ErrInvalidKey)
	}
	if e.Cmp(bigOne) <= 0 || e.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: exponent must be in (1, n)", ErrInvalidKey)
	}
	return &PublicKey{e: new(big.Int).Set(e), n: new(big.Int).Set(n)}, nil
}

// E returns a copy of the public exponent.
func (k *PublicKey) E() *big.Int { return new(big.Int).Set(k.e) }

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int { return new(big.Int).Set(k.n) }

// Size returns the modulus length in bytes.
func (k *PublicKey) Size() int {
	return (k.n.BitLen() + 7) / 8
}

// MaxMessageLen returns the longest message, in bytes, that is guaranteed to
// encode to an integer below n regardless of content.
func (k *PublicKey) MaxMessageLen() int {
	return (k.n.BitLen() - 1) / 8
}

// CheckMessage reports ErrMessageTooLarge when msg, read as a big-endian
// integer, is not below n and would therefore not survive a round trip.
func (k *PublicKey) CheckMessage(msg []byte) error {
	m := new(big.Int).SetBytes(msg)
	if m.Cmp(k.n) >= 0 {
		return fmt.Errorf("%w: %d-bit message, %d-bit modulus", ErrMessageTooLarge, m.BitLen(), k.n.BitLen())
	}
	return nil
}

// Equal reports whether k and other have the same exponent and modulus.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.e.Cmp(other.e) == 0 && k.n.Cmp(other.n) == 0
}

// Fingerprint returns a short hex identifier of the public key, suitable for
// logs and display.
func (k *PublicKey) Fingerprint() string {
	return crypto.Fingerprint(k.e.Bytes(), k.n.Bytes())
}

// KeyPair holds a public key and the matching private exponent d. The
// modulus is shared with the public key.
type KeyPair struct {
	pub PublicKey
	d   *big.Int
}

// Public returns the public key. The returned value is immutable.
func (kp *KeyPair) Public() *PublicKey { return &kp.pub }

// D returns a copy of the private exponent.
func (kp *KeyPair) D() *big.Int { return new(big.Int).Set(kp.d) }

// Factors are the primes a key pair was built from. They are returned by
// Generator.Generate for inspection and testing; the key pair itself does not
// retain them.
type Factors struct {
	P *big.Int
	Q *big.Int
}

// Modulus returns p*q.
func (f *Factors) Modulus() *big.Int {
	return new(big.Int).Mul(f.P, f.Q)
}

// Totient returns φ(n) = (p-1)(q-1).
func (f *Factors) Totient() *big.Int {
	p1 := new(big.Int).Sub(f.P, bigOne)
	q1 := new(big.Int).Sub(f.Q, bigOne)
	return p1.Mul(p1, q1)
}
