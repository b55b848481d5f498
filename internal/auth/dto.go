package auth

import (
	"github.com/modastore/modastore-backend/internal/users"
)

// RegisterRequest contains the payload required for onboarding a new account.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"max=120"`
	LastName  string `json:"last_name" validate:"max=120"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"omitempty,oneof=customer vendor"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse contains the token and user produced by a successful login or signup.
type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        users.UserDTO `json:"user"`
}
