package crypto

import (
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/xof"
)

// randReader overrides the default random source. It defaults to nil, which
// means crypto/rand, and can be replaced with SetRandReaderForTesting.
var randReader io.Reader

// Random returns the reader used when callers do not inject their own.
func Random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// NewSeededReader returns a deterministic, unbounded byte stream derived from
// seed. Equal seeds yield equal streams. The returned reader is not safe for
// concurrent use.
func NewSeededReader(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	key, err := DeriveKey(seed, nil, []byte(SeedContext), SeedKeySize)
	if err != nil {
		return nil, err
	}

	stream := xof.SHAKE256.New()
	// Writes to an XOF before the first Read never fail.
	_, _ = stream.Write(key)
	return stream, nil
}
