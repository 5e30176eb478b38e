package commands

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	textbookrsa "github.com/vaultsandbox/textbook-rsa"
	"github.com/vaultsandbox/textbook-rsa/internal/numtheory"
)

func inverseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse <a> <m>",
		Short: "Print the inverse of a modulo m",
		Long: "Print gcd(a, m), the Bézout coefficients x, y with a*x + m*y = gcd(a, m),\n" +
			"and d with a*d = 1 (mod m). Integers may be decimal or 0x-prefixed hex.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}
			m, err := parseInt(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			g, bx, by := numtheory.ExtendedGCD(x, m)
			fmt.Fprintf(out, "gcd: %s\n", g)
			fmt.Fprintf(out, "bezout: %s*(%s) + %s*(%s) = %s\n", x, bx, m, by, g)

			d, ok := textbookrsa.ModularInverse(x, m)
			if !ok {
				return fmt.Errorf("%s has no inverse modulo %s", x, m)
			}
			a.logger.Debug("computed inverse", "modulus_bits", m.BitLen())
			fmt.Fprintf(out, "inverse: %s\n", d)
			return nil
		},
	}
	return cmd
}

func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
