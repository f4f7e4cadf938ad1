package repository

import (
	"context"

	"dental-care-server/internal/domain/entity"
	domainRepo "dental-care-server/internal/domain/repository"

	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

// Record inserts the payment and flips the referenced booking to paid
// inside one transaction. A missing booking rolls the payment back and
// surfaces gorm.ErrRecordNotFound.
func (r *paymentRepository) Record(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.Booking{}).
			Where("id = ?", payment.BookingID).
			Updates(map[string]interface{}{
				"paid":           true,
				"transaction_id": payment.TransactionID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
