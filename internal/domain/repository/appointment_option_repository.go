package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"
)

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]entity.AppointmentOption, error)
	FindByName(ctx context.Context, name string) (*entity.AppointmentOption, error)
	// FindNames returns templates with only the id and name columns
	// populated, for the specialty listing.
	FindNames(ctx context.Context) ([]entity.AppointmentOption, error)
}
