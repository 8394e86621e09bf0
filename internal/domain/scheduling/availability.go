package scheduling

import "github.com/MediBookLabs/clinic-scheduler/internal/models"

// ComputeAvailability subtracts the day's booked slots from each
// service's full catalog. Slot order follows the service's declared
// order. Bookings whose treatment matches no service reduce nothing.
func ComputeAvailability(
	services []models.Service,
	bookings []models.Booking,
) []DayAvailability {

	bookedByTreatment := make(map[string]map[string]bool, len(services))
	for _, b := range bookings {
		set, ok := bookedByTreatment[b.Treatment]
		if !ok {
			set = make(map[string]bool)
			bookedByTreatment[b.Treatment] = set
		}
		set[b.Slot] = true
	}

	out := make([]DayAvailability, 0, len(services))
	for _, svc := range services {
		booked := bookedByTreatment[svc.Name]

		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if !booked[slot] {
				open = append(open, slot)
			}
		}

		out = append(out, DayAvailability{
			ID:    svc.ID,
			Name:  svc.Name,
			Slots: open,
			Price: svc.Price,
		})
	}

	return out
}
