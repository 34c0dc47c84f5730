// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"guruku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=teacher student"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelUser(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
