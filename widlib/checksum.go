package widlib

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// checksumAlphabet is the fixed digit alphabet for checksums. Order is
// significant; changing it breaks compatibility with existing identifiers.
const checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Checksum derives a base-36 checksum of the given length from data. The
// SHA-256 digest of data is read as one big-endian integer and converted to
// base 36, least significant digit last. A length of zero yields the empty
// string. The checksum detects accidental transcription errors only; it is
// not collision resistant and is not meant to be.
func Checksum(data []byte, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: checksum length must not be negative (got %d)", ErrBadParameter, length)
	}
	if length == 0 {
		return "", nil
	}
	sum := sha256.Sum256(data)
	num := new(big.Int).SetBytes(sum[:])
	base := big.NewInt(int64(len(checksumAlphabet)))
	digit := new(big.Int)
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		num.DivMod(num, base, digit)
		out[i] = checksumAlphabet[digit.Int64()]
	}
	return string(out), nil
}
