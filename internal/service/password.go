package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordEncoding is returned when the submitted password cannot be
// hashed at all (bcrypt rejects inputs longer than 72 bytes).
var ErrPasswordEncoding = errors.New("password could not be encoded")

// HashPassword produces a salted bcrypt hash of the plaintext. Every call
// generates a fresh salt, so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPasswordEncoding, err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash. This
// is the only path by which a presented password is ever compared.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
