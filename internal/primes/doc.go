// Package primes provides the probabilistic prime capability used for RSA
// key generation.
//
// A [Source] draws candidate primes from a caller-supplied random reader and
// checks primality. [ProbablePrimes] is the default implementation, built on
// math/big's Miller-Rabin plus Baillie-PSW test. Because the reader is
// injected, a deterministic reader yields deterministic primes, which is what
// reproducible tests rely on.
package primes
