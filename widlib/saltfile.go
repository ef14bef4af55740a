package widlib

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/atomicfile"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// saltFileFormat is the storage format label supported by this package.
const saltFileFormat = "wid1"

// A saltFile is the JSON shell of an encrypted salt file. The payload is a
// random nonce followed by the XChaCha20-Poly1305 ciphertext of the salt,
// sealed with a key derived from the owner's passphrase.
type saltFile struct {
	Format  string `json:"format"`
	KDFSalt []byte `json:"kdfSalt"`
	Data    []byte `json:"data"` // nonce || ciphertext
}

// saltFileKey derives the encryption key for a salt file from the owner's
// passphrase and the stored KDF salt.
func saltFileKey(passphrase string, kdfSalt []byte) []byte {
	h := hkdf.New(sha256.New, []byte(passphrase), kdfSalt, []byte(saltFileFormat+" salt file"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		panic(fmt.Sprintf("derive key: %v", err)) // HKDF cannot fail at this length
	}
	return key
}

// WriteSaltFile writes salt to path encrypted under passphrase. The file is
// created atomically with mode 0600. This is caller-side storage of the
// caller's own secret; the identifier pipeline itself never persists salts.
func WriteSaltFile(path string, salt Salt, passphrase string) error {
	kdfSalt := make([]byte, 16)
	if _, err := io.ReadFull(crand.Reader, kdfSalt); err != nil {
		return fmt.Errorf("generate KDF salt: %w", err)
	}
	aead, err := chacha20poly1305.NewX(saltFileKey(passphrase, kdfSalt))
	if err != nil {
		return fmt.Errorf("initialize encryption key: %w", err)
	}
	buf := make([]byte, aead.NonceSize(), aead.NonceSize()+len(salt)+aead.Overhead())
	if _, err := io.ReadFull(crand.Reader, buf); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	data := aead.Seal(buf, buf, salt, []byte(saltFileFormat))

	return atomicfile.Tx(path, 0600, func(f *atomicfile.File) error {
		return json.NewEncoder(f).Encode(saltFile{
			Format:  saltFileFormat,
			KDFSalt: kdfSalt,
			Data:    data,
		})
	})
}

// ReadSaltFile reads the encrypted salt stored at path, unsealing it with
// passphrase. A wrong passphrase or damaged file reports an error without
// partial output.
func ReadSaltFile(path, passphrase string) (Salt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open salt file: %w", err)
	}
	defer f.Close()

	var sf saltFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode salt file: %w", err)
	}
	if sf.Format != saltFileFormat {
		return nil, fmt.Errorf("unsupported salt file format %q", sf.Format)
	}
	aead, err := chacha20poly1305.NewX(saltFileKey(passphrase, sf.KDFSalt))
	if err != nil {
		return nil, fmt.Errorf("initialize decryption key: %w", err)
	}
	if len(sf.Data) < aead.NonceSize() {
		return nil, errors.New("malformed salt file: short nonce")
	}
	nonce, ctext := sf.Data[:aead.NonceSize()], sf.Data[aead.NonceSize():]
	salt, err := aead.Open(nil, nonce, ctext, []byte(saltFileFormat))
	if err != nil {
		return nil, errors.New("incorrect passphrase or damaged salt file")
	}
	return Salt(salt), nil
}
