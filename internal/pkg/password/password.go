// Package password guards the single admin console password.
package password

import (
	"storefront/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty       = errs.New("password is empty")
	ErrMismatch    = errs.New("password does not match")
	ErrInvalidHash = errs.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")
)

// Hash produces the value operators put in ADMIN_PASSWORD_HASH.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmpty
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func Verify(hash, plain string) error {
	if plain == "" {
		return ErrEmpty
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return errs.Mark(err, ErrInvalidHash)
	}
	return nil
}

// CheckHash rejects configuration that could never verify, so a typo fails at start-up
// instead of at the first login.
func CheckHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return errs.Mark(err, ErrInvalidHash)
	}
	return nil
}
