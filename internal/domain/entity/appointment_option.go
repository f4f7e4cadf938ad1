package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SlotList is the ordered catalog of bookable time-slot labels for a
// treatment. Stored as a jsonb document; ordering is significant.
type SlotList []string

// AppointmentOption is a treatment template: a named dental service with
// a price and a fixed catalog of time slots. Templates are immutable in
// normal operation.
type AppointmentOption struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Slots     SlotList        `gorm:"type:jsonb;serializer:json;not null" json:"slots"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentOption) TableName() string {
	return "appointment_options"
}

// RemainingSlots returns the template slots not present in booked,
// preserving the template's original slot order.
func (o *AppointmentOption) RemainingSlots(booked map[string]struct{}) SlotList {
	remaining := make(SlotList, 0, len(o.Slots))
	for _, slot := range o.Slots {
		if _, taken := booked[slot]; !taken {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}
