package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]entity.Booking, error)
	// FindConflicts returns bookings matching exactly
	// (email, appointment date, treatment).
	FindConflicts(ctx context.Context, email, date, treatment string) ([]entity.Booking, error)
}
