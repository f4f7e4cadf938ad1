package converter

import (
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/entity"
)

// OptionToResponse converts an AppointmentOption template to its
// response DTO, substituting the remaining slots for the template's
// full catalog.
func OptionToResponse(option *entity.AppointmentOption, slots entity.SlotList) *dto.AppointmentOptionResponse {
	if option == nil {
		return nil
	}

	return &dto.AppointmentOptionResponse{
		ID:    option.ID,
		Name:  option.Name,
		Price: option.Price,
		Slots: slots,
	}
}

// OptionToSpecialty converts an AppointmentOption to its name-only DTO
func OptionToSpecialty(option *entity.AppointmentOption) *dto.SpecialtyResponse {
	if option == nil {
		return nil
	}

	return &dto.SpecialtyResponse{
		ID:   option.ID,
		Name: option.Name,
	}
}

// OptionsToSpecialties converts a slice of templates to name-only DTOs
func OptionsToSpecialties(options []entity.AppointmentOption) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(options))
	for i, option := range options {
		resp := OptionToSpecialty(&option)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
