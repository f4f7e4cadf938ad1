package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the record of a confirmed payment-provider transaction for
// a booking. Created once, never mutated.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"bookingId"`
	Email         string          `gorm:"type:varchar(255);not null" json:"email"`
	TransactionID string          `gorm:"type:varchar(255);not null" json:"transactionId"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string {
	return "payments"
}
