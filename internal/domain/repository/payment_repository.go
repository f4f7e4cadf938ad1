package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"
)

type PaymentRepository interface {
	// Record persists the payment and marks the referenced booking paid
	// in a single transaction, so a failed booking update never leaves
	// an orphaned payment row.
	Record(ctx context.Context, payment *entity.Payment) error
}
