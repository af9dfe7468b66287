// Package password wraps bcrypt for the single credential this service
// stores, the administrator password hash held in configuration.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword covers both an empty input and a hash mismatch, so a
// caller cannot tell which one failed.
var ErrInvalidPassword = errors.New("invalid password")

// Hash derives a bcrypt hash suitable for APP_ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify compares plain against a bcrypt hash. A mismatch is
// ErrInvalidPassword; any other error means the stored hash is malformed.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
