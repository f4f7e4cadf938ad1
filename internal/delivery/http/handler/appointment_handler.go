package handler

import (
	"net/http"

	"dental-care-server/internal/usecase"
	"dental-care-server/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

// GetOptions lists treatments with the slots remaining on ?date=.
func (h *AppointmentHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	options, err := h.appointmentUsecase.GetOptions(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment options")
		return
	}

	response.Success(w, http.StatusOK, "Appointment options retrieved successfully", options)
}

// GetSpecialties lists treatment names only.
func (h *AppointmentHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.appointmentUsecase.GetSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}
