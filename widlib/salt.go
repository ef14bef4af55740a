package widlib

import (
	crand "crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/getpass"
)

// MinSaltLen is the minimum number of random bytes in a generated salt.
const MinSaltLen = 32

// A Salt is the secret key for identifier generation. It is an opaque byte
// sequence; the library never logs or stores it. The identifier derived from
// a salt is the only artifact meant to be persisted.
type Salt []byte

// SaltFromString returns the salt whose key bytes are the UTF-8 encoding of s.
func SaltFromString(s string) Salt { return Salt(s) }

// NewSalt generates a fresh random salt of n bytes, n >= MinSaltLen.
// Randomness is drawn from crypto/rand.
func NewSalt(n int) (Salt, error) {
	if n < MinSaltLen {
		return nil, fmt.Errorf("%w: salt size must be at least %d bytes (got %d)", ErrBadParameter, MinSaltLen, n)
	}
	buf := make(Salt, n)
	if _, err := io.ReadFull(crand.Reader, buf); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return buf, nil
}

// Hex renders the salt as a lowercase hexadecimal string for display or
// storage by the caller. Note that a salt round-tripped through Hex must be
// reused as that text (SaltFromString), since the key is the literal bytes.
func (s Salt) Hex() string { return hex.EncodeToString(s) }

// GetPassphrase prompts the user at the terminal for a passphrase with echo
// disabled. An empty passphrase is permitted; the caller must check for that
// case if an empty passphrase is not wanted.
func GetPassphrase(prompt string) (string, error) {
	passphrase, err := getpass.Prompt(prompt)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return passphrase, nil
}

// ConfirmPassphrase prompts the user at the terminal for a passphrase with
// echo disabled, then prompts again for confirmation and reports an error if
// the two copies are not equal.
func ConfirmPassphrase(prompt string) (string, error) {
	passphrase, err := getpass.Prompt(prompt)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	confirm, err := getpass.Prompt("Confirm " + strings.ToLower(prompt))
	if err != nil {
		return "", fmt.Errorf("read confirmation: %w", err)
	}
	if confirm != passphrase {
		return "", errors.New("passphrases do not match")
	}
	return passphrase, nil
}
