package usecase

import (
	"context"
	"fmt"

	"dental-care-server/internal/delivery/dto"
	"dental-care-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// -- Mock Repositories --

type mockOptionRepo struct {
	options []entity.AppointmentOption
}

func (m *mockOptionRepo) FindAll(_ context.Context) ([]entity.AppointmentOption, error) {
	return m.options, nil
}

func (m *mockOptionRepo) FindByName(_ context.Context, name string) (*entity.AppointmentOption, error) {
	for i := range m.options {
		if m.options[i].Name == name {
			return &m.options[i], nil
		}
	}
	return nil, nil
}

func (m *mockOptionRepo) FindNames(_ context.Context) ([]entity.AppointmentOption, error) {
	names := make([]entity.AppointmentOption, len(m.options))
	for i, option := range m.options {
		names[i] = entity.AppointmentOption{ID: option.ID, Name: option.Name}
	}
	return names, nil
}

type mockBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	// forceDuplicateOnCreate makes the next Create fail with a unique
	// violation, emulating a concurrent insert between the conflict
	// pre-check and the write.
	forceDuplicateOnCreate bool
}

func newMockBookingRepo() *mockBookingRepo {
	return &mockBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (m *mockBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if m.forceDuplicateOnCreate {
		m.forceDuplicateOnCreate = false
		return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_email_date_treatment"}
	}
	for _, b := range m.bookings {
		if b.Email == booking.Email && b.AppointmentDate == booking.AppointmentDate && b.Treatment == booking.Treatment {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_email_date_treatment"}
		}
	}
	booking.ID = uuid.New()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.bookings[id], nil
}

func (m *mockBookingRepo) FindByEmail(_ context.Context, email string) ([]entity.Booking, error) {
	var result []entity.Booking
	for _, b := range m.bookings {
		if b.Email == email {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) FindByDate(_ context.Context, date string) ([]entity.Booking, error) {
	var result []entity.Booking
	for _, b := range m.bookings {
		if b.AppointmentDate == date {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (m *mockBookingRepo) FindConflicts(_ context.Context, email, date, treatment string) ([]entity.Booking, error) {
	var result []entity.Booking
	for _, b := range m.bookings {
		if b.Email == email && b.AppointmentDate == date && b.Treatment == treatment {
			result = append(result, *b)
		}
	}
	return result, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		}
	}
	user.ID = uuid.New()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	var result []entity.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) PromoteToAdmin(_ context.Context, id uuid.UUID) (int64, error) {
	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = entity.RoleAdmin
	return 1, nil
}

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*entity.Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*entity.Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) error {
	doctor.ID = uuid.New()
	m.doctors[doctor.ID] = doctor
	return nil
}

func (m *mockDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	var result []entity.Doctor
	for _, d := range m.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	return m.doctors[id], nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

// mockPaymentRepo emulates the transactional payment write: the payment
// row and the booking update land together or not at all.
type mockPaymentRepo struct {
	payments []*entity.Payment
	bookings *mockBookingRepo
}

func (m *mockPaymentRepo) Record(_ context.Context, payment *entity.Payment) error {
	booking, ok := m.bookings.bookings[payment.BookingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	payment.ID = uuid.New()
	m.payments = append(m.payments, payment)
	booking.MarkPaid(payment.TransactionID)
	return nil
}

// -- Mock Services --

type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) LogCreate(_ context.Context, _, action, _, _ string, _ interface{}) error {
	m.actions = append(m.actions, action)
	return nil
}

func (m *mockAuditService) LogDelete(_ context.Context, _, action, _, _ string, _ interface{}) error {
	m.actions = append(m.actions, action)
	return nil
}

func (m *mockAuditService) LogUpdate(_ context.Context, _, action, _, _ string, _, _ interface{}) error {
	m.actions = append(m.actions, action)
	return nil
}

type mockAvailabilityCache struct {
	store       map[string][]dto.AppointmentOptionResponse
	invalidated []string
}

func newMockAvailabilityCache() *mockAvailabilityCache {
	return &mockAvailabilityCache{store: make(map[string][]dto.AppointmentOptionResponse)}
}

func (m *mockAvailabilityCache) Get(_ context.Context, date string) ([]dto.AppointmentOptionResponse, bool) {
	options, ok := m.store[date]
	return options, ok
}

func (m *mockAvailabilityCache) Set(_ context.Context, date string, options []dto.AppointmentOptionResponse) {
	if date == "" {
		return
	}
	m.store[date] = options
}

func (m *mockAvailabilityCache) Invalidate(_ context.Context, date string) {
	delete(m.store, date)
	m.invalidated = append(m.invalidated, date)
}

type mockIntentClient struct {
	lastAmount int64
	secret     string
	err        error
}

func (m *mockIntentClient) CreateIntent(_ context.Context, amount int64) (string, error) {
	m.lastAmount = amount
	if m.err != nil {
		return "", m.err
	}
	if m.secret == "" {
		return fmt.Sprintf("pi_secret_%d", amount), nil
	}
	return m.secret, nil
}
