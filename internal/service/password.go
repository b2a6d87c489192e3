package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Stored password format: a 64-hex-character salt followed by the hex-encoded
// PBKDF2-SHA256 digest of the password, 100,000 iterations. The salt itself is
// the hex digest of 32 random bytes, so both halves are 64 characters.
const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = 32
	saltHexLen       = 64
)

// HashPassword hashes a password for storing. Two calls with the same
// password produce different stored strings because each gets a fresh salt.
func HashPassword(password string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest := sha256.Sum256(raw)
	salt := hex.EncodeToString(digest[:])

	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return salt + hex.EncodeToString(key), nil
}

// VerifyPassword checks a provided password against a stored hash.
func VerifyPassword(stored, provided string) bool {
	if len(stored) != saltHexLen*2 {
		return false
	}
	salt := stored[:saltHexLen]
	key := pbkdf2.Key([]byte(provided), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	derived := hex.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored[saltHexLen:])) == 1
}
