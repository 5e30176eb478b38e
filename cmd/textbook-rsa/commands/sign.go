package commands

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	textbookrsa "github.com/vaultsandbox/textbook-rsa"
	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

var errSeedRequired = errors.New("verify needs --seed or TEXTBOOK_RSA_SEED to regenerate the key")

func signCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message and print the base64url signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.generate(cmd)
			if err != nil {
				return err
			}
			signer, err := textbookrsa.NewSigner(kp, a.hashAlgorithm())
			if err != nil {
				return err
			}
			sig, err := signer.Sign([]byte(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fingerprint: %s\n", kp.Public().Fingerprint())
			fmt.Fprintf(out, "Signature: %s\n", crypto.ToBase64URL(sig.Bytes()))
			return nil
		},
	}
	return cmd
}

func verifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <message> <signature>",
		Short: "Verify a base64url signature with the key derived from --seed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings.Seed == "" {
				return errSeedRequired
			}
			raw, err := crypto.FromBase64URL(args[1])
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}

			kp, err := a.generate(cmd)
			if err != nil {
				return err
			}
			verifier, err := textbookrsa.NewVerifier(kp.Public(), a.hashAlgorithm())
			if err != nil {
				return err
			}

			ok := verifier.Verify([]byte(args[0]), new(big.Int).SetBytes(raw))
			a.logger.Info("verified signature", "valid", ok, "fingerprint", kp.Public().Fingerprint())
			fmt.Fprintf(cmd.OutOrStdout(), "Verified: %t\n", ok)
			return nil
		},
	}
	return cmd
}
