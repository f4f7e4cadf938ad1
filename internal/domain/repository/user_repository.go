package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByEmail returns (nil, nil) when no user record exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// PromoteToAdmin sets role=admin and returns affected rows
	// (0 = no such user).
	PromoteToAdmin(ctx context.Context, id uuid.UUID) (int64, error)
}
