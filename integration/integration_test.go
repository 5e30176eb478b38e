//go:build integration

package integration

import (
	"context"
	"crypto/rsa"
	"crypto/sha256"
	"math/big"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/joho/godotenv"
	textbookrsa "github.com/vaultsandbox/textbook-rsa"
)

var primeBits = textbookrsa.DefaultPrimeBits

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	if v := os.Getenv("TEXTBOOK_RSA_BITS"); v != "" {
		bits, err := strconv.Atoi(v)
		if err != nil {
			os.Stderr.WriteString("Invalid TEXTBOOK_RSA_BITS: " + v + "\n")
			os.Exit(1)
		}
		primeBits = bits
	}

	os.Stderr.WriteString("Running integration tests with " + strconv.Itoa(primeBits) + "-bit primes...\n")
	os.Exit(m.Run())
}

func generate(t *testing.T) (*textbookrsa.KeyPair, *textbookrsa.Factors) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	g, err := textbookrsa.NewGenerator(textbookrsa.WithPrimeBits(primeBits))
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	kp, f, err := g.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	t.Logf("Generated key: %s", kp.Public().Fingerprint())
	return kp, f
}

// TestIntegration_ValidatesAsStandardKey checks generated keys against the
// consistency checks of crypto/rsa.
func TestIntegration_ValidatesAsStandardKey(t *testing.T) {
	kp, f := generate(t)
	pub := kp.Public()

	std := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{N: pub.N(), E: int(pub.E().Int64())},
		D:         kp.D(),
		Primes:    []*big.Int{f.P, f.Q},
	}
	if err := std.Validate(); err != nil {
		t.Fatalf("crypto/rsa Validate() error = %v", err)
	}
	if std.N.BitLen() != 2*primeBits {
		t.Errorf("modulus bit length = %d, want %d", std.N.BitLen(), 2*primeBits)
	}
}

func TestIntegration_SignatureMatchesRawDigest(t *testing.T) {
	kp, _ := generate(t)
	pub := kp.Public()
	msg := []byte("Hello")

	sig, err := kp.Sign(msg)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	sum := sha256.Sum256(msg)
	want := new(big.Int).SetBytes(sum[:])
	got := new(big.Int).Exp(sig, pub.E(), pub.N())
	if got.Cmp(want) != 0 {
		t.Errorf("sig^e mod n = %x, want digest %x", got, want)
	}
	if pub.Verify([]byte("Hllo"), sig) {
		t.Error("tampered message verified")
	}
}

func TestIntegration_RoundTripMaxLength(t *testing.T) {
	kp, _ := generate(t)
	pub := kp.Public()

	msg := make([]byte, pub.MaxMessageLen())
	for i := range msg {
		msg[i] = byte(i%255) + 1
	}
	if err := pub.CheckMessage(msg); err != nil {
		t.Fatalf("CheckMessage() error = %v", err)
	}
	if got := kp.Decrypt(pub.Encrypt(msg)); string(got) != string(msg) {
		t.Error("round trip failed for a maximum length message")
	}
}
