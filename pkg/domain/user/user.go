// Package user holds the minimal user record backing the identity adapter.
// The ledger itself only ever sees the opaque owner id.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a login attempt fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents an authenticated owner of ledger entities.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string // bcrypt hash
	Names     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a User with a hashed password and current timestamps.
func NewUser(email, password, names string) (*User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hashed),
		Names:     names,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewUserFromData hydrates a User from persisted data.
func NewUserFromData(id uuid.UUID, email, password, names string, created, updated time.Time) *User {
	return &User{
		ID:        id,
		Email:     email,
		Password:  password,
		Names:     names,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
