package scheduling

import (
	"context"

	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Service --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	FindBooking(
		ctx context.Context,
		treatment string,
		date string,
		patientEmail string,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read / payment) --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookingsByPatient(
		ctx context.Context,
		patientEmail string,
	) ([]models.Booking, error)

	ListBookingsByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	MarkBookingPaid(
		ctx context.Context,
		b *models.Booking,
		transactionID string,
		amount int64,
	) error
}
