// Package widlib is a support library for the wordid tool.
//
// The core entry point is GenerateID, which maps an input string to a short
// identifier made of words from a validated word list, plus an optional
// checksum for typo detection. The mapping is keyed by a secret salt: without
// the salt the identifier reveals nothing useful about the input, but with
// the same salt, input, word list, and options the result is always
// byte-for-byte identical.
package widlib

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/wordid/wordlist"
)

var (
	// ErrBadParameter is reported when a generation parameter is out of range.
	ErrBadParameter = errors.New("invalid parameter")

	// ErrBadEncoding is reported when input text is not valid UTF-8.
	ErrBadEncoding = errors.New("invalid text encoding")
)

// Options control the shape of a generated identifier.
type Options struct {
	Words     int    // number of words drawn from the list (minimum 2)
	Checksum  int    // number of checksum characters (0 means no checksum)
	Separator string // string joining the output tokens
}

// DefaultOptions are the standard generation settings: three words, a
// two-character checksum, and "-" as the separator.
var DefaultOptions = Options{Words: 3, Checksum: 2, Separator: "-"}

// Digest computes the HMAC/SHA-256 digest of the normalized input text using
// key as the secret key. The result is always 32 bytes. It reports
// ErrBadEncoding if text is not valid UTF-8, since other implementations
// could never reproduce a digest over ill-formed bytes.
func Digest(key []byte, text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrBadEncoding)
	}
	h := hmac.New(sha256.New, key)
	io.WriteString(h, Normalize(text))
	return h.Sum(nil), nil
}

// GenerateID derives the identifier for input under the given salt and word
// list. The derivation is a pure function of its arguments: it performs no
// I/O and leaves no state behind, so concurrent calls may share list freely.
func GenerateID(input string, salt Salt, list *wordlist.List, opts Options) (string, error) {
	if opts.Words < 2 {
		return "", fmt.Errorf("%w: at least 2 words are required (got %d)", ErrBadParameter, opts.Words)
	}
	if opts.Checksum < 0 {
		return "", fmt.Errorf("%w: checksum length must not be negative (got %d)", ErrBadParameter, opts.Checksum)
	}
	digest, err := Digest(salt, input)
	if err != nil {
		return "", err
	}
	indices, err := ExpandIndices(digest, list.Len(), opts.Words)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, opts.Words+1)
	for _, i := range indices {
		parts = append(parts, list.Word(i))
	}
	if opts.Checksum > 0 {
		check, err := Checksum(digest, opts.Checksum)
		if err != nil {
			return "", err
		}
		parts = append(parts, check)
	}
	return strings.Join(parts, opts.Separator), nil
}
