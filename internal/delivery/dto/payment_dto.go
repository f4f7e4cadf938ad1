package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentIntentRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

type RecordPaymentRequest struct {
	BookingID     uuid.UUID       `json:"bookingId" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	TransactionID string          `json:"transactionId" validate:"required"`
	Amount        decimal.Decimal `json:"price" validate:"required"`
}

// Response DTOs

// PaymentIntentResponse carries the provider's client secret the payment
// form completes the charge with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"bookingId"`
	Email         string          `json:"email"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}
