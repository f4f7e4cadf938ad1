package usecase

import (
	"context"

	"dental-care-server/internal/converter"
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AvailabilityCache is the per-date availability cache the usecases
// read through and invalidate. Satisfied by service.AvailabilityCache.
type AvailabilityCache interface {
	Get(ctx context.Context, date string) ([]dto.AppointmentOptionResponse, bool)
	Set(ctx context.Context, date string, options []dto.AppointmentOptionResponse)
	Invalidate(ctx context.Context, date string)
}

type AppointmentUsecase interface {
	GetOptions(ctx context.Context, date string) ([]dto.AppointmentOptionResponse, error)
	GetSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type appointmentUsecase struct {
	log         *logrus.Logger
	optionRepo  repository.AppointmentOptionRepository
	bookingRepo repository.BookingRepository
	cache       AvailabilityCache
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	optionRepo repository.AppointmentOptionRepository,
	bookingRepo repository.BookingRepository,
	cache AvailabilityCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:         log,
		optionRepo:  optionRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// GetOptions returns every treatment template with the slots still free
// on the given date: the template's slot catalog minus the slots of
// bookings matching that exact (date, treatment) pair. Slot order
// follows the template. A date with no bookings returns every template
// unchanged.
func (u *appointmentUsecase) GetOptions(ctx context.Context, date string) ([]dto.AppointmentOptionResponse, error) {
	if cached, ok := u.cache.Get(ctx, date); ok {
		return cached, nil
	}

	options, err := u.optionRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load appointment options: %+v", err)
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByDate(ctx, date)
	if err != nil {
		u.log.Warnf("Failed to load bookings for %s: %+v", date, err)
		return nil, err
	}

	// booked slots grouped by treatment name
	bookedByTreatment := make(map[string]map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		if bookedByTreatment[booking.Treatment] == nil {
			bookedByTreatment[booking.Treatment] = make(map[string]struct{})
		}
		bookedByTreatment[booking.Treatment][booking.Slot] = struct{}{}
	}

	responses := make([]dto.AppointmentOptionResponse, 0, len(options))
	for i := range options {
		option := &options[i]
		remaining := option.RemainingSlots(bookedByTreatment[option.Name])
		responses = append(responses, *converter.OptionToResponse(option, remaining))
	}

	u.cache.Set(ctx, date, responses)
	return responses, nil
}

// GetSpecialties returns the treatment names only.
func (u *appointmentUsecase) GetSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	options, err := u.optionRepo.FindNames(ctx)
	if err != nil {
		u.log.Warnf("Failed to load specialties: %+v", err)
		return nil, err
	}

	return converter.OptionsToSpecialties(options), nil
}
