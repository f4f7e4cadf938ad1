package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,min=2"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// AdminStatusResponse and TokenResponse are fixed wire shapes consumed
// by the booking client.

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
