package auth

import "github.com/angelmondragon/clubhouse-backend/internal/users"

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse carries a bearer token and the public user view.
type AuthResponse struct {
	Token string         `json:"token"`
	User  *users.UserDTO `json:"user"`
}

// MeResponse wraps the caller's profile.
type MeResponse struct {
	User *users.UserDTO `json:"user"`
}
