//go:build unit || e2e

package builder

import (
	"invoice-dashboard/internal/domain/user"

	"github.com/google/uuid"
)

const (
	DefaultPassword     = "123456"
	DefaultPasswordHash = "hashed_password"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: DefaultPasswordHash,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.Name, email, u.PasswordHash), nil
}

func (u *UserBuilder) BuildStored() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, u.Name, email, u.PasswordHash), nil
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}
