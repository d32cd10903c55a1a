// Package auth provides credential hashing and verification
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns bcrypt hash using the given cost.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// maxPasswordBytes is the bcrypt input limit; longer input is truncated
const maxPasswordBytes = 72

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
// Only the first 72 bytes of the password are significant.
// Any failure, including a malformed hash, is reported as false.
func VerifyPassword(plain, hash string) bool {
	if hash == "" {
		return false
	}
	password := []byte(plain)
	if len(password) > maxPasswordBytes {
		password = password[:maxPasswordBytes]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), password) == nil
}
