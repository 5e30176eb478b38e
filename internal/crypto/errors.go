package crypto

import "errors"

var (
	// ErrUnsupportedDigest is returned when a digest algorithm name is unknown.
	ErrUnsupportedDigest = errors.New("unsupported digest algorithm")

	// ErrEmptySeed is returned when a seeded reader is requested without seed material.
	ErrEmptySeed = errors.New("seed must not be empty")
)
