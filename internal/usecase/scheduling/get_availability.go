package scheduling

import (
	"context"

	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute joins the full service catalog with the given date's
// bookings and returns each service's remaining open slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.DayAvailability, error) {

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAvailability(services, bookings), nil
}
