package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dental-care-server/internal/converter"
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/delivery/http/middleware"
	"dental-care-server/internal/domain/entity"
	"dental-care-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotBookingOwner = errors.New("bookings can only be listed by their owner")
)

type BookingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingCreateResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.BookingListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	cache       AvailabilityCache
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	cache AvailabilityCache,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		cache:       cache,
	}
}

// Create persists a booking unless one already exists for the same
// (email, appointment date, treatment). A duplicate is reported as
// acknowledged=false with a message, not as an error. The check is
// check-then-act; a concurrent identical submission that slips past it
// loses at the unique index and gets the same duplicate response.
func (u *bookingUsecase) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingCreateResponse, error) {
	existing, err := u.bookingRepo.FindConflicts(ctx, req.Email, req.AppointmentDate, req.Treatment)
	if err != nil {
		u.log.Warnf("Failed to check existing bookings: %+v", err)
		return nil, err
	}
	if len(existing) > 0 {
		return duplicateBookingResponse(req.AppointmentDate), nil
	}

	booking := &entity.Booking{
		Email:           req.Email,
		AppointmentDate: req.AppointmentDate,
		Treatment:       req.Treatment,
		Slot:            req.Slot,
		PatientName:     req.PatientName,
		Phone:           req.Phone,
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		if isDuplicateKeyError(err, "idx_bookings_email_date_treatment") {
			return duplicateBookingResponse(req.AppointmentDate), nil
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	u.cache.Invalidate(ctx, req.AppointmentDate)

	u.log.Infof("Booking created: id=%s, date=%s, treatment=%s", booking.ID, req.AppointmentDate, req.Treatment)
	return &dto.BookingCreateResponse{
		Acknowledged: true,
		InsertedID:   &booking.ID,
	}, nil
}

// GetByEmail returns the bookings of the authenticated identity. The
// requested email must match the token's email claim.
func (u *bookingUsecase) GetByEmail(ctx context.Context, email string) (*dto.BookingListResponse, error) {
	claimEmail, ok := middleware.GetUserEmailFromContext(ctx)
	if !ok || claimEmail != email {
		return nil, ErrNotBookingOwner
	}

	bookings, err := u.bookingRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find bookings for %s: %+v", email, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return converter.BookingToResponse(booking), nil
}

func duplicateBookingResponse(date string) *dto.BookingCreateResponse {
	return &dto.BookingCreateResponse{
		Acknowledged: false,
		Message:      fmt.Sprintf("You already have a booking on %s", date),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
