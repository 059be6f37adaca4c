package user

import (
	"github.com/google/uuid"
)

// User is an account allowed to sign in to the dashboard.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
}

func NewUser(name string, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

// ReconstructUser rebuilds a stored user without re-validating it.
func ReconstructUser(id uuid.UUID, name string, email Email, passwordHash string) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
