package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *SchedulingGormRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SchedulingGormRepository) GetServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *SchedulingGormRepository) FindBooking(
	ctx context.Context,
	treatment string,
	date string,
	patientEmail string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where(
			"treatment = ? AND date = ? AND patient_email = ?",
			treatment, date, patientEmail,
		).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SchedulingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return httperr.ErrBusiness(domain.ErrSlotTaken)
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Booking (read / payment)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SchedulingGormRepository) ListBookingsByPatient(
	ctx context.Context,
	patientEmail string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("patient_email = ?", patientEmail).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *SchedulingGormRepository) ListBookingsByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *SchedulingGormRepository) MarkBookingPaid(
	ctx context.Context,
	b *models.Booking,
	transactionID string,
	amount int64,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b.Paid = true
		b.TransactionID = transactionID

		if err := tx.Save(b).Error; err != nil {
			return err
		}

		payment := models.Payment{
			BookingID:     b.ID,
			TransactionID: transactionID,
			Amount:        amount,
		}
		return tx.Create(&payment).Error
	})
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
