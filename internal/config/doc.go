// Package config loads the textbook-rsa CLI settings from the environment.
//
// Values are read from TEXTBOOK_RSA_* variables after an optional .env file
// has been loaded with godotenv. Variables already present in the process
// environment take precedence over the file. Command-line flags are applied
// on top by the caller, and the result is checked with Validate.
package config
