package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty" validate:"required"`
	ImageURL  string `json:"image" validate:"omitempty,url"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Specialty string    `json:"specialty"`
	ImageURL  string    `json:"image,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
