// Package hash provides scrypt password hashing with per-user salts.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N/r/p follow the widely used interactive-login defaults;
// changing them invalidates every stored hash, so they are fixed constants.
const (
	scryptN      = 1 << 14 // CPU/memory cost
	scryptR      = 8       // block size
	scryptP      = 1       // parallelism
	scryptKeyLen = 64      // derived key length in bytes
	saltLen      = 16      // random salt length in bytes before hex encoding
)

// Scrypt derives and verifies password hashes.
// The zero value is ready to use; NewScrypt exists for dependency injection.
type Scrypt struct{}

// NewScrypt creates a new Scrypt hasher.
func NewScrypt() *Scrypt {
	return &Scrypt{}
}

// Generate produces a fresh hex-encoded random salt and the hex-encoded
// scrypt hash of password under that salt. The hex salt string itself is the
// KDF salt input, so stored salts round-trip without decoding.
func (s *Scrypt) Generate(password string) (salt, hash string, err error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", fmt.Errorf("failed to derive password hash: %w", err)
	}
	return salt, hex.EncodeToString(key), nil
}

// Verify re-derives the hash of password under salt and compares it with
// expectedHash in constant time. A malformed expectedHash is an error, not a
// mismatch: stored hashes are always produced by Generate.
func (s *Scrypt) Verify(password, salt, expectedHash string) (bool, error) {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false, fmt.Errorf("stored hash is not valid hex: %w", err)
	}

	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("failed to derive password hash: %w", err)
	}

	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}
