package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present. A missing default file is not an
// error.
const DefaultEnvFile = ".env"

// Environment variables.
const (
	EnvPrimeBits     = "TEXTBOOK_RSA_BITS"
	EnvHash          = "TEXTBOOK_RSA_HASH"
	EnvSeed          = "TEXTBOOK_RSA_SEED"
	EnvMaxAttempts   = "TEXTBOOK_RSA_MAX_ATTEMPTS"
	EnvLogLevel      = "TEXTBOOK_RSA_LOG_LEVEL"
	EnvLogFile       = "TEXTBOOK_RSA_LOG_FILE"
	EnvLogMaxSize    = "TEXTBOOK_RSA_LOG_MAX_SIZE"
	EnvLogMaxBackups = "TEXTBOOK_RSA_LOG_MAX_BACKUPS"
	EnvLogMaxAge     = "TEXTBOOK_RSA_LOG_MAX_AGE"
)

// Log level constants
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Settings holds the CLI configuration.
type Settings struct {
	PrimeBits   int    `validate:"gte=16,lte=8192"`
	Hash        string `validate:"required,oneof=SHA-256 SHA-512 SHA3-256 BLAKE2b-256 SHAKE256"`
	Seed        string `validate:"omitempty,hexadecimal"`
	MaxAttempts int    `validate:"gte=1,lte=1000"`

	LogLevel      string `validate:"required,oneof=debug info warning error"`
	LogFile       string
	LogMaxSize    int `validate:"gte=1,lte=100"`
	LogMaxBackups int `validate:"gte=0,lte=10"`
	LogMaxAge     int `validate:"gte=1,lte=365"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		PrimeBits:     1024,
		Hash:          "SHA-256",
		MaxAttempts:   8,
		LogLevel:      LogLevelWarning,
		LogMaxSize:    10,
		LogMaxBackups: 3,
		LogMaxAge:     28,
	}
}

// Load reads envFile with godotenv, if given, and then builds Settings from
// the environment on top of Default. It does not validate.
func Load(envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if envFile != DefaultEnvFile || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	s := Default()
	if err := s.fromEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) fromEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvPrimeBits, &s.PrimeBits},
		{EnvMaxAttempts, &s.MaxAttempts},
		{EnvLogMaxSize, &s.LogMaxSize},
		{EnvLogMaxBackups, &s.LogMaxBackups},
		{EnvLogMaxAge, &s.LogMaxAge},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvHash, &s.Hash},
		{EnvSeed, &s.Seed},
		{EnvLogLevel, &s.LogLevel},
		{EnvLogFile, &s.LogFile},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.key); ok && raw != "" {
			*v.dst = raw
		}
	}
	return nil
}

// Validate checks that all fields in Settings are valid.
func (s *Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for Settings: %w", err)
	}
	if s.Seed != "" {
		h := s.SeedHex()
		if h == "" {
			return fmt.Errorf("validation failed for Settings: seed has no hex digits")
		}
		if len(h)%2 != 0 {
			return fmt.Errorf("validation failed for Settings: seed must have an even number of hex digits")
		}
	}
	return nil
}

// SeedHex returns Seed without its optional 0x prefix.
func (s *Settings) SeedHex() string {
	return strings.TrimPrefix(strings.TrimPrefix(s.Seed, "0x"), "0X")
}
