package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	textbookrsa "github.com/vaultsandbox/textbook-rsa"
	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

func demoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [message]",
		Short: "Encrypt, decrypt, sign and verify a message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := []byte("Hello")
			if len(args) == 1 {
				msg = []byte(args[0])
			}

			kp, err := a.generate(cmd)
			if err != nil {
				return err
			}
			pub := kp.Public()
			if err := pub.CheckMessage(msg); err != nil {
				return fmt.Errorf("%w (max %d bytes)", err, pub.MaxMessageLen())
			}

			signer, err := textbookrsa.NewSigner(kp, a.hashAlgorithm())
			if err != nil {
				return err
			}
			verifier, err := textbookrsa.NewVerifier(pub, a.hashAlgorithm())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key:        %d-bit modulus, fingerprint %s\n", pub.N().BitLen(), pub.Fingerprint())
			fmt.Fprintf(out, "Message:    %s\n", msg)

			c := pub.Encrypt(msg)
			fmt.Fprintf(out, "Ciphertext: %s\n", crypto.ToBase64URL(c.Bytes()))
			fmt.Fprintf(out, "Decrypted:  %s\n", kp.Decrypt(c))

			sig, err := signer.Sign(msg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Signature:  %s (%s)\n", crypto.ToBase64URL(sig.Bytes()), signer.Hash())
			fmt.Fprintf(out, "Verified:   %t\n", verifier.Verify(msg, sig))

			tampered := tamper(msg)
			fmt.Fprintf(out, "Tampered:   %s verified %t\n", tampered, verifier.Verify(tampered, sig))
			return nil
		},
	}
	return cmd
}

// tamper drops the second byte of msg, or appends one when msg is too short.
func tamper(msg []byte) []byte {
	if len(msg) < 2 {
		return append(append([]byte(nil), msg...), '!')
	}
	out := make([]byte, 0, len(msg)-1)
	out = append(out, msg[0])
	return append(out, msg[2:]...)
}
