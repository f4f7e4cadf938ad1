package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	// Delete removes a doctor and returns affected rows (0 = not found).
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
