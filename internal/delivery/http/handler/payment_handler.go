package handler

import (
	"encoding/json"
	"net/http"

	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/usecase"
	"dental-care-server/pkg/response"
	"dental-care-server/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// CreatePaymentIntent returns {"clientSecret": ...} for the provider's
// payment form.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	intent, err := h.paymentUsecase.CreateIntent(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidAmount {
			response.Error(w, http.StatusBadRequest, "Payment amount must be positive", nil)
			return
		}
		response.InternalServerError(w, "Failed to create payment intent")
		return
	}

	response.JSON(w, http.StatusOK, intent)
}

// RecordPayment stores the payment and marks the referenced booking
// paid.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RecordPayment(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to record payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}
