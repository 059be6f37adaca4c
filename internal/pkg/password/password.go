package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("password hashing failed")
	ErrMismatch      = errors.New("password does not match")
	ErrInvalidInput  = errors.New("invalid password input")
	// ErrCorruptHash means the stored value is not a usable bcrypt hash.
	ErrCorruptHash = errors.New("stored password hash is corrupt")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidInput
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashed, plain string) error {
	if plain == "" {
		return ErrInvalidInput
	}
	if hashed == "" {
		return ErrCorruptHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		// ErrHashTooShort, invalid prefix or cost
		return errors.Join(ErrCorruptHash, err)
	}
}
