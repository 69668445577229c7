package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = bcrypt.DefaultCost
	// MinLength matches the account registration rule.
	MinLength = 6
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword when plain does not match hash.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
