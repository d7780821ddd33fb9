package auth

import "github.com/fintrackd/fintrack/pkg/dto"

// RegisterRequest is the request body for creating a user.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Names    string `json:"names" validate:"omitempty,max=128"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func dtoFromRegister(r *RegisterRequest) dto.UserCreate {
	return dto.UserCreate{Email: r.Email, Password: r.Password, Names: r.Names}
}
