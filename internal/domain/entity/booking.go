package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a patient's claim on one slot of a treatment for a
// calendar date. At most one booking may exist per
// (email, appointment_date, treatment); the composite unique index
// backstops the application-level conflict check.
type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_bookings_email_date_treatment" json:"email"`
	AppointmentDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_bookings_email_date_treatment;index" json:"appointmentDate"`
	Treatment       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_bookings_email_date_treatment" json:"treatment"`
	Slot            string    `gorm:"type:varchar(50);not null" json:"slot"`
	PatientName     string    `gorm:"type:varchar(255)" json:"patientName,omitempty"`
	Phone           string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Paid            bool      `gorm:"not null;default:false" json:"paid"`
	TransactionID   string    `gorm:"type:varchar(255)" json:"transactionId,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPaid reports whether the booking has a confirmed payment.
func (b *Booking) IsPaid() bool {
	return b.Paid
}

// MarkPaid records a confirmed payment on the booking.
func (b *Booking) MarkPaid(transactionID string) {
	b.Paid = true
	b.TransactionID = transactionID
}
