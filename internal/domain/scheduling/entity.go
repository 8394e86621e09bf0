package scheduling

import "github.com/MediBookLabs/clinic-scheduler/internal/models"

// ErrSlotTaken is the business code raised when a concurrent insert
// hits the (treatment, date, slot) unique index.
const ErrSlotTaken = "slot_taken"

// DayAvailability is a service with its slot list reduced to the
// slots still open on the requested date.
type DayAvailability struct {
	ID    uint     `json:"_id"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price *float64 `json:"price,omitempty"`
}

// CreateBookingResult distinguishes a fresh insert from the
// idempotent conflict path. Conflict is a normal outcome, not an error.
type CreateBookingResult struct {
	Created bool
	Booking *models.Booking
}
