package scheduling

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository for use-case tests.
type fakeRepo struct {
	services []models.Service
	bookings []models.Booking

	nextID uint

	// when set, CreateBooking fails once with this error to simulate
	// losing the unique-index race
	createErrOnce error

	// when set, FindBooking misses once, as if the concurrent insert
	// had not committed yet at check time
	findMissesOnce bool
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].Name == name {
			return &f.services[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindBooking(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error) {
	if f.findMissesOnce {
		f.findMissesOnce = false
		return nil, nil
	}
	for i := range f.bookings {
		b := &f.bookings[i]
		if b.Treatment == treatment && b.Date == date && b.PatientEmail == patientEmail {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createErrOnce != nil {
		err := f.createErrOnce
		f.createErrOnce = nil
		return err
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookingsByPatient(ctx context.Context, patientEmail string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PatientEmail == patientEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkBookingPaid(ctx context.Context, b *models.Booking, transactionID string, amount int64) error {
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
			b.Paid = true
			b.TransactionID = transactionID
			return nil
		}
	}
	return errors.New("booking not found")
}

var _ domain.Repository = (*fakeRepo)(nil)

// noopSink discards audit entries.
type noopSink struct{}

func (noopSink) Log(string, string, string, *uint, any) error { return nil }
