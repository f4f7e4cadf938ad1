package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

// AppointmentOptionResponse is a treatment template with only the slots
// still free on the requested date.
type AppointmentOptionResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Slots []string        `json:"slots"`
}

type SpecialtyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
