package converter

import (
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		BookingID:     payment.BookingID,
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		CreatedAt:     payment.CreatedAt,
	}
}
