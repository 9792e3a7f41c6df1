// Package securex is the credential engine: per-user salt generation,
// password hashing and verification, plus format rules for usernames
// and passwords.
package securex

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DefaultSaltSize is the number of random bytes in a freshly generated
// salt. The hex encoding doubles it to 64 characters on disk.
const DefaultSaltSize = 32

// GenerateSalt produces size random bytes from the OS entropy source,
// hex-encoded. It fails only if the entropy source is unavailable;
// callers abort the in-flight operation and do not retry.
func GenerateSalt(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword derives the stored hash for a password and salt:
// hex(SHA-256(password+salt)).
//
// This is a single unsalted-iteration hash, kept for compatibility
// with existing databases. It is weaker against offline brute force
// than an iterated KDF such as argon2; switching schemes invalidates
// every stored hash and needs an explicit migration.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the hash for (password, salt) and compares
// it to the stored value.
func VerifyPassword(password, salt, expectedHash string) bool {
	return HashPassword(password, salt) == expectedHash
}

// Wipe overwrites b with zeros. Use it on plaintext password buffers
// as soon as they are no longer needed. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
