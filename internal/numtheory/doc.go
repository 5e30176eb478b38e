// Package numtheory implements the number-theoretic helpers behind RSA key
// construction: the extended Euclidean algorithm and the modular inverse
// derived from it.
//
// All functions are pure. Arguments are never modified and every result is a
// freshly allocated *big.Int.
package numtheory
