// Package hash wraps bcrypt for credential storage. bcrypt embeds a fresh
// salt in every digest, so hashing the same plaintext twice yields different
// digests and Verify recovers the salt from the digest itself.
package hash

import "golang.org/x/crypto/bcrypt"

func Password(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest
// verifies false rather than erroring; the caller only cares about the
// yes/no outcome.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
