package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of public key material.
//
// It hashes the concatenated parts with SHA-256 and truncates to
// FingerprintSize bytes (20 hex chars). Each part is length-prefixed so that
// different splits of the same bytes do not collide.
func Fingerprint(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		n := len(p)
		h.Write([]byte{byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
		h.Write(p)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:FingerprintSize])
}
