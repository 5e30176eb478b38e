package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	textbookrsa "github.com/vaultsandbox/textbook-rsa"
	"github.com/vaultsandbox/textbook-rsa/internal/config"
	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
	"github.com/vaultsandbox/textbook-rsa/internal/logging"
)

// app is the state shared by subcommands once the root command has run.
type app struct {
	settings *config.Settings
	logger   *slog.Logger
	closer   io.Closer

	envFile     string
	bits        int
	hash        string
	seed        string
	maxAttempts int
	logLevel    string
	logFile     string
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "textbook-rsa",
		Short:        "Textbook RSA key generation, encryption and signatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "env file to load before reading TEXTBOOK_RSA_* variables")
	flags.IntVar(&a.bits, "bits", 0, "size of each prime in bits (default 1024)")
	flags.StringVar(&a.hash, "hash", "", "signature digest: "+strings.Join(crypto.DigestNames(), ", ")+" (default SHA-256)")
	flags.StringVar(&a.seed, "seed", "", "hex seed for deterministic keys (insecure, for reproducible runs)")
	flags.IntVar(&a.maxAttempts, "max-attempts", 0, "prime pairs to try before giving up (default 8)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warning or error (default warning)")
	flags.StringVar(&a.logFile, "log-file", "", "write JSON logs to a rotating file instead of stderr")

	root.AddCommand(demoCmd(a), keygenCmd(a), signCmd(a), verifyCmd(a), inverseCmd(a))
	return root
}

// setup loads settings, applies flags that were set explicitly and builds the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("bits") {
		s.PrimeBits = a.bits
	}
	if flags.Changed("hash") {
		s.Hash = a.hash
	}
	if flags.Changed("seed") {
		s.Seed = a.seed
	}
	if flags.Changed("max-attempts") {
		s.MaxAttempts = a.maxAttempts
	}
	if flags.Changed("log-level") {
		s.LogLevel = a.logLevel
	}
	if flags.Changed("log-file") {
		s.LogFile = a.logFile
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s.Seed = s.SeedHex()

	logger, closer := logging.New(s, cmd.ErrOrStderr())
	a.settings = s
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	a.closer = closer
	return nil
}

// generatorOptions translates settings into key generation options.
func (a *app) generatorOptions() ([]textbookrsa.Option, error) {
	opts := []textbookrsa.Option{
		textbookrsa.WithPrimeBits(a.settings.PrimeBits),
		textbookrsa.WithMaxAttempts(a.settings.MaxAttempts),
		textbookrsa.WithLogger(a.logger),
	}
	if a.settings.Seed != "" {
		seed, err := hex.DecodeString(a.settings.Seed)
		if err != nil {
			return nil, fmt.Errorf("decode seed: %w", err)
		}
		opts = append(opts, textbookrsa.WithSeed(seed))
	}
	return opts, nil
}

func (a *app) generate(cmd *cobra.Command) (*textbookrsa.KeyPair, error) {
	opts, err := a.generatorOptions()
	if err != nil {
		return nil, err
	}
	g, err := textbookrsa.NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	kp, _, err := g.Generate(cmd.Context())
	if err != nil {
		a.logger.Error("key generation failed", "error", err)
		return nil, err
	}
	return kp, nil
}

func (a *app) hashAlgorithm() textbookrsa.SignOption {
	return textbookrsa.WithHash(textbookrsa.HashAlgorithm(a.settings.Hash))
}
