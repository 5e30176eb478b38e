// Package textbookrsa implements textbook RSA: key generation, raw
// encryption and decryption, and hash-then-sign signatures.
//
// This is the unpadded scheme from the literature. It is deterministic,
// malleable and offers no protection against chosen-ciphertext or timing
// attacks. Use it to study RSA, not to protect data.
//
// Basic usage:
//
//	kp, err := textbookrsa.GenerateKeys()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := kp.Public().Encrypt([]byte("Hello"))
//	fmt.Printf("%s\n", kp.Decrypt(c)) // Hello
//
//	sig, err := kp.Sign([]byte("Hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(kp.Public().Verify([]byte("Hello"), sig)) // true
//
// # Key generation
//
// [Generator] draws two primes of [DefaultPrimeBits] bits each, fixes the
// public exponent at [PublicExponent] and computes the private exponent as its
// inverse modulo φ(n) = (p-1)(q-1). When the exponent is not invertible the
// generator discards the primes and tries again, up to a configurable number
// of attempts. Randomness, the prime source and logging are injected through
// [Option] values, which makes seeded, reproducible generation possible with
// [WithSeed].
//
// # Messages
//
// A message is a byte sequence read as a big-endian unsigned integer m. It
// must satisfy m < n; larger values silently wrap modulo n. Use
// [PublicKey.CheckMessage] or [PublicKey.MaxMessageLen] to stay inside the
// bound. Decryption returns the minimal big-endian encoding, so leading zero
// bytes of the original message are not preserved.
//
// # Signatures
//
// A signature is h^d mod n where h is the digest of the message read as an
// integer. [Signer] and [Verifier] select the digest with [WithHash]; the
// shortcut methods on [KeyPair] and [PublicKey] use SHA-256. A failed
// verification is reported as false, never as an error.
//
// All key types are immutable after construction and safe for concurrent use.
package textbookrsa
