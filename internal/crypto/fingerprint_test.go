package crypto

import (
	"bytes"
	"testing"
)

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte{0x01, 0x00, 0x01}, []byte{0x0c, 0xa1})
	if fp != "0553a62d7bbae48c2c58" {
		t.Errorf("Fingerprint = %s, want 0553a62d7bbae48c2c58", fp)
	}
	if len(fp) != 2*FingerprintSize {
		t.Errorf("len = %d, want %d", len(fp), 2*FingerprintSize)
	}
}

func TestFingerprint_PartBoundaries(t *testing.T) {
	a := Fingerprint([]byte{1, 2}, []byte{3})
	b := Fingerprint([]byte{1}, []byte{2, 3})
	if a == b {
		t.Error("different part splits produced the same fingerprint")
	}
}

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"url unsafe chars", []byte{0xfb, 0xf0}},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := FromBase64URL(ToBase64URL(tt.data))
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}
