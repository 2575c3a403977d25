package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	Cost = bcrypt.DefaultCost

	// bcrypt ignores everything past the first 72 bytes
	maxLength = 72
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrTooLong         = errors.New("password is longer than 72 bytes")
)

// Hash bcrypts plain for use as ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmptyPassword
	case len(plain) > maxLength:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// IsHash reports whether value is a bcrypt hash.
func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))

	return err == nil
}

// Verify returns ErrInvalidPassword unless plain matches hash.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" || len(plain) > maxLength {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
