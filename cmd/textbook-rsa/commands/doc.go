// Package commands defines the textbook-rsa CLI.
//
// Commands
//
//   - demo      Generate a key pair and run encrypt, decrypt, sign and verify
//   - keygen    Print a generated key pair in hex with its fingerprint
//   - sign      Sign a message and print the signature
//   - verify    Verify a signature against a key regenerated from --seed
//   - inverse   Compute a modular inverse
//
// # Configuration
//
// Settings come from TEXTBOOK_RSA_* environment variables, optionally loaded
// from a .env file, and are overridden by flags. Every run logs with a fresh
// run_id so records from one invocation can be grouped. Keys are never
// written to disk.
package commands
