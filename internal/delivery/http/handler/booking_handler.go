package handler

import (
	"encoding/json"
	"net/http"

	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/usecase"
	"dental-care-server/pkg/response"
	"dental-care-server/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking submits a booking. A duplicate (email, date, treatment)
// gets 200 with acknowledged=false, matching the booking client's
// contract.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create booking")
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// GetMyBookings lists bookings for ?email=; the email must match the
// bearer token's identity claim.
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	bookings, err := h.bookingUsecase.GetByEmail(r.Context(), email)
	if err != nil {
		if err == usecase.ErrNotBookingOwner {
			response.Forbidden(w, "Forbidden access")
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetByID(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}
