package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Digest is a fixed-size hash function over arbitrary byte sequences.
type Digest interface {
	// Name returns the algorithm name, e.g. "SHA-256".
	Name() string
	// Size returns the digest length in bytes.
	Size() int
	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
}

// hashDigest adapts a hash.Hash constructor.
type hashDigest struct {
	name string
	size int
	new  func() hash.Hash
}

func (d hashDigest) Name() string { return d.name }
func (d hashDigest) Size() int    { return d.size }

func (d hashDigest) Sum(msg []byte) []byte {
	h := d.new()
	h.Write(msg)
	return h.Sum(nil)
}

// xofDigest squeezes a fixed number of bytes from an extendable-output function.
type xofDigest struct {
	name string
	size int
	id   xof.ID
}

func (d xofDigest) Name() string { return d.name }
func (d xofDigest) Size() int    { return d.size }

func (d xofDigest) Sum(msg []byte) []byte {
	x := d.id.New()
	_, _ = x.Write(msg)
	out := make([]byte, d.size)
	// Reads from an XOF never fail.
	_, _ = x.Read(out)
	return out
}

func newBLAKE2b256() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

var digests = map[string]Digest{
	SHA256:     hashDigest{name: SHA256, size: sha256.Size, new: sha256.New},
	SHA512:     hashDigest{name: SHA512, size: sha512.Size, new: sha512.New},
	SHA3_256:   hashDigest{name: SHA3_256, size: 32, new: sha3.New256},
	BLAKE2b256: hashDigest{name: BLAKE2b256, size: blake2b.Size256, new: newBLAKE2b256},
	SHAKE256:   xofDigest{name: SHAKE256, size: SHAKE256DigestSize, id: xof.SHAKE256},
}

// NewDigest returns the digest registered under name.
func NewDigest(name string) (Digest, error) {
	d, ok := digests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, name)
	}
	return d, nil
}

// DigestNames returns the supported algorithm names in a stable order.
func DigestNames() []string {
	return []string{SHA256, SHA512, SHA3_256, BLAKE2b256, SHAKE256}
}
