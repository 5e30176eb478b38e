package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print it in hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.generate(cmd)
			if err != nil {
				return err
			}
			pub := kp.Public()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "e: %x\n", pub.E())
			fmt.Fprintf(out, "n: %x\n", pub.N())
			fmt.Fprintf(out, "d: %x\n", kp.D())
			fmt.Fprintf(out, "Fingerprint: %s\n", pub.Fingerprint())
			return nil
		},
	}
	return cmd
}
