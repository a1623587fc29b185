package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the bcrypt hash stored for a department user's
// password at registration and on password change.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash reports whether a login attempt's plaintext password
// matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
