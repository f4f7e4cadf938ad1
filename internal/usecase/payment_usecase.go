package usecase

import (
	"context"
	"errors"

	"dental-care-server/internal/converter"
	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/entity"
	"dental-care-server/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// PaymentIntentClient creates payment-provider intents. Satisfied by
// payment.StripeClient.
type PaymentIntentClient interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type PaymentUsecase interface {
	CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
}

type paymentUsecase struct {
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	intents     PaymentIntentClient
	cache       AvailabilityCache
}

func NewPaymentUsecase(
	log *logrus.Logger,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	intents PaymentIntentClient,
	cache AvailabilityCache,
) PaymentUsecase {
	return &paymentUsecase{
		log:         log,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		intents:     intents,
		cache:       cache,
	}
}

// CreateIntent asks the provider for a payment intent over the
// treatment price converted to the smallest currency unit.
func (u *paymentUsecase) CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	amount := req.Price.Mul(decimal.NewFromInt(100)).IntPart()
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	clientSecret, err := u.intents.CreateIntent(ctx, amount)
	if err != nil {
		u.log.Warnf("Failed to create payment intent: %+v", err)
		return nil, err
	}

	return &dto.PaymentIntentResponse{ClientSecret: clientSecret}, nil
}

// RecordPayment persists the payment and marks the referenced booking
// paid with the transaction id, atomically. The booking's date drops
// out of the availability cache afterwards: a paid booking still holds
// its slot, but a stale cached listing must not outlive the write.
func (u *paymentUsecase) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	booking, err := u.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", req.BookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	payment := &entity.Payment{
		BookingID:     req.BookingID,
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	}

	if err := u.paymentRepo.Record(ctx, payment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		u.log.Errorf("Failed to record payment for booking %s: %+v", req.BookingID, err)
		return nil, err
	}

	u.cache.Invalidate(ctx, booking.AppointmentDate)

	u.log.Infof("Payment recorded: booking=%s, transaction=%s", req.BookingID, req.TransactionID)
	return converter.PaymentToResponse(payment), nil
}
