package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate is the input for registering a user.
type UserCreate struct {
	Email    string
	Password string
	Names    string
}

// UserRead is the read-optimized user shape. The password hash never leaves
// the repository layer.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Names     string    `json:"names,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
