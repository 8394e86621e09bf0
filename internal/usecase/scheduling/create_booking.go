package scheduling

import (
	"context"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Treatment string
	Date      string
	Slot      string

	PatientName  string
	PatientEmail string
	Phone        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates a booking unless the patient already holds one for
// the same treatment and date. The repeat submission is not an error:
// the existing record comes back with Created=false.
//
// The check-then-insert pair is racy on its own; the storage-level
// unique index on (treatment, date, slot) closes the window, and the
// violation surfaces as ErrSlotTaken.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*domain.CreateBookingResult, error) {

	existing, err := uc.repo.FindBooking(ctx, in.Treatment, in.Date, in.PatientEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.audit.Dispatch(audit.Event{
			ActorEmail: in.PatientEmail,
			Action:     "booking_conflict",
			Entity:     "booking",
			EntityID:   &existing.ID,
		})

		return &domain.CreateBookingResult{
			Created: false,
			Booking: existing,
		}, nil
	}

	b := &models.Booking{
		Treatment:    in.Treatment,
		Date:         in.Date,
		Slot:         in.Slot,
		PatientName:  in.PatientName,
		PatientEmail: in.PatientEmail,
		Phone:        in.Phone,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, domain.ErrSlotTaken) {
			// lost the race; if it was this patient's own duplicate,
			// fall back to the idempotent response
			if dup, ferr := uc.repo.FindBooking(ctx, in.Treatment, in.Date, in.PatientEmail); ferr == nil && dup != nil {
				return &domain.CreateBookingResult{
					Created: false,
					Booking: dup,
				}, nil
			}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.PatientEmail,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return &domain.CreateBookingResult{
		Created: true,
		Booking: b,
	}, nil
}
