package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes a member's plaintext password for storage on
// the member row and the credential mirror.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether plain matches the stored bcrypt hash.
func CheckPasswordHash(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
