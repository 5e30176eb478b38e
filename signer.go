package textbookrsa

import (
	"fmt"
	"math/big"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

// Signer produces signatures s = h^d mod n over message digests h.
// It is safe for concurrent use.
type Signer struct {
	key    *KeyPair
	digest crypto.Digest
}

// NewSigner returns a Signer for kp.
func NewSigner(kp *KeyPair, opts ...SignOption) (*Signer, error) {
	if kp == nil {
		return nil, fmt.Errorf("%w: nil key pair", ErrInvalidKey)
	}
	d, err := newSignDigest(opts)
	if err != nil {
		return nil, err
	}
	return &Signer{key: kp, digest: d}, nil
}

// Hash returns the digest algorithm in use.
func (s *Signer) Hash() HashAlgorithm { return HashAlgorithm(s.digest.Name()) }

// Sign hashes msg and returns the signature. It fails with ErrDigestTooLarge
// when the digest does not fit below the modulus, since such a signature could
// never verify.
func (s *Signer) Sign(msg []byte) (*big.Int, error) {
	return sign(s.key, s.digest, msg)
}

// Verifier checks signatures against a public key.
// It is safe for concurrent use.
type Verifier struct {
	key    *PublicKey
	digest crypto.Digest
}

// NewVerifier returns a Verifier for pub.
func NewVerifier(pub *PublicKey, opts ...SignOption) (*Verifier, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: nil public key", ErrInvalidKey)
	}
	d, err := newSignDigest(opts)
	if err != nil {
		return nil, err
	}
	return &Verifier{key: pub, digest: d}, nil
}

// Hash returns the digest algorithm in use.
func (v *Verifier) Hash() HashAlgorithm { return HashAlgorithm(v.digest.Name()) }

// Verify reports whether sig is a valid signature of msg.
func (v *Verifier) Verify(msg []byte, sig *big.Int) bool {
	return verify(v.key, v.digest, msg, sig)
}

// Sign signs msg with SHA-256.
func (kp *KeyPair) Sign(msg []byte) (*big.Int, error) {
	return sign(kp, sha256Digest, msg)
}

// Verify checks a SHA-256 signature of msg.
func (k *PublicKey) Verify(msg []byte, sig *big.Int) bool {
	return verify(k, sha256Digest, msg, sig)
}

var sha256Digest = mustDigest(defaultHash)

func mustDigest(h HashAlgorithm) crypto.Digest {
	d, err := resolveDigest(h)
	if err != nil {
		panic(err)
	}
	return d
}

func newSignDigest(opts []SignOption) (crypto.Digest, error) {
	cfg := signConfig{hash: defaultHash}
	for _, opt := range opts {
		opt(&cfg)
	}
	return resolveDigest(cfg.hash)
}

func digestInt(d crypto.Digest, msg []byte) *big.Int {
	return new(big.Int).SetBytes(d.Sum(msg))
}

func sign(kp *KeyPair, d crypto.Digest, msg []byte) (*big.Int, error) {
	h := digestInt(d, msg)
	if h.Cmp(kp.pub.n) >= 0 {
		return nil, fmt.Errorf("%w: %s digest, %d-bit modulus", ErrDigestTooLarge, d.Name(), kp.pub.n.BitLen())
	}
	return h.Exp(h, kp.d, kp.pub.n), nil
}

func verify(pub *PublicKey, d crypto.Digest, msg []byte, sig *big.Int) bool {
	if sig == nil || sig.Sign() < 0 || sig.Cmp(pub.n) >= 0 {
		return false
	}
	h := digestInt(d, msg)
	recovered := new(big.Int).Exp(sig, pub.e, pub.n)
	return recovered.Cmp(h) == 0
}
