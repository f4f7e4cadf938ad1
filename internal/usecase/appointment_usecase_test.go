package usecase

import (
	"context"
	"io"
	"reflect"
	"testing"

	"dental-care-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func cleaningOption() entity.AppointmentOption {
	return entity.AppointmentOption{
		ID:    uuid.New(),
		Name:  "Cleaning",
		Price: decimal.NewFromInt(99),
		Slots: entity.SlotList{"9am", "10am", "11am"},
	}
}

func whiteningOption() entity.AppointmentOption {
	return entity.AppointmentOption{
		ID:    uuid.New(),
		Name:  "Teeth Whitening",
		Price: decimal.NewFromInt(120),
		Slots: entity.SlotList{"1pm", "2pm"},
	}
}

func newAppointmentFixture(options ...entity.AppointmentOption) (AppointmentUsecase, *mockBookingRepo, *mockAvailabilityCache) {
	bookingRepo := newMockBookingRepo()
	cache := newMockAvailabilityCache()
	uc := NewAppointmentUsecase(newTestLogger(), &mockOptionRepo{options: options}, bookingRepo, cache)
	return uc, bookingRepo, cache
}

func TestGetOptionsSubtractsBookedSlots(t *testing.T) {
	uc, bookingRepo, _ := newAppointmentFixture(cleaningOption(), whiteningOption())

	err := bookingRepo.Create(context.Background(), &entity.Booking{
		Email:           "patient@example.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "10am",
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	options, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("GetOptions: %v", err)
	}

	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "11am"}) {
		t.Errorf("Cleaning slots = %v, want [9am 11am]", options[0].Slots)
	}
	if !reflect.DeepEqual(options[1].Slots, []string{"1pm", "2pm"}) {
		t.Errorf("Teeth Whitening slots = %v, want [1pm 2pm]", options[1].Slots)
	}
}

func TestGetOptionsNoBookingsReturnsFullCatalog(t *testing.T) {
	uc, _, _ := newAppointmentFixture(cleaningOption())

	options, err := uc.GetOptions(context.Background(), "2024-06-15")
	if err != nil {
		t.Fatalf("GetOptions: %v", err)
	}

	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Errorf("slots = %v, want full catalog", options[0].Slots)
	}
}

func TestGetOptionsIgnoresOtherDates(t *testing.T) {
	uc, bookingRepo, _ := newAppointmentFixture(cleaningOption())

	if err := bookingRepo.Create(context.Background(), &entity.Booking{
		Email:           "patient@example.com",
		AppointmentDate: "2024-01-02",
		Treatment:       "Cleaning",
		Slot:            "10am",
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	options, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("GetOptions: %v", err)
	}

	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Errorf("booking on another date consumed a slot: %v", options[0].Slots)
	}
}

func TestGetOptionsIgnoresOtherTreatments(t *testing.T) {
	uc, bookingRepo, _ := newAppointmentFixture(cleaningOption(), whiteningOption())

	if err := bookingRepo.Create(context.Background(), &entity.Booking{
		Email:           "patient@example.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Teeth Whitening",
		Slot:            "1pm",
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	options, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("GetOptions: %v", err)
	}

	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "10am", "11am"}) {
		t.Errorf("Cleaning slots shrank from a Teeth Whitening booking: %v", options[0].Slots)
	}
	if !reflect.DeepEqual(options[1].Slots, []string{"2pm"}) {
		t.Errorf("Teeth Whitening slots = %v, want [2pm]", options[1].Slots)
	}
}

func TestGetOptionsPreservesTemplateOrder(t *testing.T) {
	option := entity.AppointmentOption{
		ID:    uuid.New(),
		Name:  "Cavity Protection",
		Price: decimal.NewFromInt(80),
		Slots: entity.SlotList{"8am", "9am", "10am", "11am", "12pm"},
	}
	uc, bookingRepo, _ := newAppointmentFixture(option)

	// booked out of catalog order by two patients; output must still
	// follow the template
	seeds := []struct {
		email string
		slot  string
	}{
		{"first@example.com", "11am"},
		{"second@example.com", "8am"},
	}
	for _, seed := range seeds {
		if err := bookingRepo.Create(context.Background(), &entity.Booking{
			Email:           seed.email,
			AppointmentDate: "2024-01-01",
			Treatment:       "Cavity Protection",
			Slot:            seed.slot,
		}); err != nil {
			t.Fatalf("seed booking for %s: %v", seed.email, err)
		}
	}

	options, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("GetOptions: %v", err)
	}

	if !reflect.DeepEqual(options[0].Slots, []string{"9am", "10am", "12pm"}) {
		t.Errorf("slots = %v, want [9am 10am 12pm] in template order", options[0].Slots)
	}
}

func TestGetOptionsIdempotentWithoutWrites(t *testing.T) {
	uc, bookingRepo, cache := newAppointmentFixture(cleaningOption())

	if err := bookingRepo.Create(context.Background(), &entity.Booking{
		Email:           "patient@example.com",
		AppointmentDate: "2024-01-01",
		Treatment:       "Cleaning",
		Slot:            "9am",
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	first, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("first GetOptions: %v", err)
	}
	if _, ok := cache.store["2024-01-01"]; !ok {
		t.Fatal("expected availability to be cached after first query")
	}

	second, err := uc.GetOptions(context.Background(), "2024-01-01")
	if err != nil {
		t.Fatalf("second GetOptions: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("availability changed without intervening bookings:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestGetSpecialtiesReturnsNamesOnly(t *testing.T) {
	uc, _, _ := newAppointmentFixture(cleaningOption(), whiteningOption())

	specialties, err := uc.GetSpecialties(context.Background())
	if err != nil {
		t.Fatalf("GetSpecialties: %v", err)
	}

	if len(specialties) != 2 {
		t.Fatalf("expected 2 specialties, got %d", len(specialties))
	}
	if specialties[0].Name != "Cleaning" || specialties[1].Name != "Teeth Whitening" {
		t.Errorf("unexpected specialty names: %+v", specialties)
	}
}
