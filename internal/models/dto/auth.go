package dto

import "github.com/hongminglow/dataflow-be/internal/models"

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeTerms      bool   `json:"agreeTerms"`
}

// LoginResponse is the payload returned after a successful login or registration.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}
