package dto

import "github.com/hongminglow/dataflow-be/internal/models"

// CreateUserRequest adds a user from a submission of the given form.
type CreateUserRequest struct {
	FormID string         `json:"formId" validate:"required"`
	Values map[string]any `json:"values"`
}

// UpdateUserRequest patches a user. Nil fields are left alone. Custom data
// only comes from form submissions, so it cannot be patched here.
type UpdateUserRequest struct {
	Name   *string            `json:"name,omitempty" validate:"omitempty,min=1"`
	Email  *string            `json:"email,omitempty" validate:"omitempty,email"`
	Role   *models.Role       `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	Status *models.UserStatus `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Avatar *string            `json:"avatar,omitempty"`
}
