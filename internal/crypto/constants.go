package crypto

const (
	// SeedContext is the HKDF info string used when expanding seed material
	// into a deterministic random stream, for domain separation.
	SeedContext = "textbook-rsa:seeded-reader:v1"

	// SeedKeySize is the size of the HKDF output that keys the SHAKE256 stream.
	SeedKeySize = 64

	// SHAKE256DigestSize is the number of bytes squeezed from SHAKE256 when it
	// is used as a signature digest.
	SHAKE256DigestSize = 64

	// FingerprintSize is the number of SHA-256 bytes kept in a fingerprint.
	FingerprintSize = 10
)

// Digest algorithm names.
const (
	SHA256     = "SHA-256"
	SHA512     = "SHA-512"
	SHA3_256   = "SHA3-256"
	BLAKE2b256 = "BLAKE2b-256"
	SHAKE256   = "SHAKE256"
)
