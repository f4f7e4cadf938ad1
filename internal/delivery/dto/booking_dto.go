package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Email           string `json:"email" validate:"required,email"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	Treatment       string `json:"treatment" validate:"required"`
	Slot            string `json:"slot" validate:"required"`
	PatientName     string `json:"patientName" validate:"omitempty,min=2"`
	Phone           string `json:"phone" validate:"omitempty,min=10,max=20"`
}

// Response DTOs

// BookingCreateResponse mirrors the acknowledged/insertedId contract the
// booking client expects: a duplicate submission is acknowledged=false
// with a message, not an error status.
type BookingCreateResponse struct {
	Acknowledged bool       `json:"acknowledged"`
	Message      string     `json:"message,omitempty"`
	InsertedID   *uuid.UUID `json:"insertedId,omitempty"`
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	AppointmentDate string    `json:"appointmentDate"`
	Treatment       string    `json:"treatment"`
	Slot            string    `json:"slot"`
	PatientName     string    `json:"patientName,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Paid            bool      `json:"paid"`
	TransactionID   string    `json:"transactionId,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
