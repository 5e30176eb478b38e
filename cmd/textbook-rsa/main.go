package main

import (
	"os"

	"github.com/vaultsandbox/textbook-rsa/cmd/textbook-rsa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
