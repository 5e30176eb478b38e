// Package crypto provides the hashing and randomness capabilities used by
// the textbook RSA implementation.
//
// # Digests
//
// [NewDigest] resolves an algorithm name to a [Digest], a fixed-size hash
// over an arbitrary byte sequence. Supported algorithms:
//
//   - SHA-256 (FIPS 180-4): the default signature digest.
//   - SHA-512 (FIPS 180-4).
//   - SHA3-256 (FIPS 202), via golang.org/x/crypto/sha3.
//   - BLAKE2b-256 (RFC 7693), via golang.org/x/crypto/blake2b.
//   - SHAKE256 (FIPS 202) squeezed to 64 bytes, via circl's xof package.
//
// # Randomness
//
// [Random] returns the process-wide random reader (crypto/rand unless
// overridden in tests). [NewSeededReader] returns a deterministic stream for
// reproducible key generation:
//
//	seed material --HKDF-SHA-512(info=SeedContext)--> 64-byte key
//	64-byte key   --SHAKE256--> unbounded output stream
//
// A seeded reader must never be used for keys that protect real data: anyone
// who learns the seed can regenerate the private key.
//
// # Encoding
//
// [ToBase64URL]/[FromBase64URL] encode integers and digests for display.
// [Fingerprint] gives a short hex identifier for public key material.
package crypto
