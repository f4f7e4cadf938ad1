package converter

import (
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:              booking.ID,
		Email:           booking.Email,
		AppointmentDate: booking.AppointmentDate,
		Treatment:       booking.Treatment,
		Slot:            booking.Slot,
		PatientName:     booking.PatientName,
		Phone:           booking.Phone,
		Paid:            booking.Paid,
		TransactionID:   booking.TransactionID,
		CreatedAt:       booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
