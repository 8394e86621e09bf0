package scheduling

import (
	"reflect"
	"testing"

	"github.com/MediBookLabs/clinic-scheduler/internal/models"
)

func svc(id uint, name string, slots ...string) models.Service {
	return models.Service{ID: id, Name: name, Slots: slots}
}

func TestComputeAvailabilityNoBookings(t *testing.T) {
	services := []models.Service{
		svc(1, "Teeth Orthodontics", "8:00 AM - 9:00 AM", "9:00 AM - 10:00 AM"),
		svc(2, "Cosmetic Dentistry", "10:00 AM - 11:00 AM"),
	}

	out := ComputeAvailability(services, nil)

	if len(out) != 2 {
		t.Fatalf("expected 2 services, got %d", len(out))
	}
	for i, o := range out {
		if !reflect.DeepEqual(o.Slots, services[i].Slots) {
			t.Errorf("%s: expected full slot list %v, got %v", o.Name, services[i].Slots, o.Slots)
		}
	}
}

func TestComputeAvailabilitySubtractsBookedSlots(t *testing.T) {
	services := []models.Service{
		svc(1, "Cleaning", "9am", "10am"),
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am"},
	}

	out := ComputeAvailability(services, bookings)

	if len(out) != 1 {
		t.Fatalf("expected 1 service, got %d", len(out))
	}
	want := []string{"10am"}
	if !reflect.DeepEqual(out[0].Slots, want) {
		t.Errorf("expected open slots %v, got %v", want, out[0].Slots)
	}
}

func TestComputeAvailabilityPreservesSlotOrder(t *testing.T) {
	services := []models.Service{
		svc(1, "Checkup", "8am", "9am", "10am", "11am", "12pm"),
	}
	bookings := []models.Booking{
		{Treatment: "Checkup", Slot: "10am"},
		{Treatment: "Checkup", Slot: "8am"},
	}

	out := ComputeAvailability(services, bookings)

	want := []string{"9am", "11am", "12pm"}
	if !reflect.DeepEqual(out[0].Slots, want) {
		t.Errorf("expected %v, got %v", want, out[0].Slots)
	}
}

func TestComputeAvailabilityIgnoresUnknownTreatments(t *testing.T) {
	services := []models.Service{
		svc(1, "Cleaning", "9am", "10am"),
	}
	bookings := []models.Booking{
		{Treatment: "Sorcery", Slot: "9am"},
	}

	out := ComputeAvailability(services, bookings)

	want := []string{"9am", "10am"}
	if !reflect.DeepEqual(out[0].Slots, want) {
		t.Errorf("unknown treatment must not reduce availability: got %v", out[0].Slots)
	}
}

func TestComputeAvailabilityNeverReturnsBookedSlot(t *testing.T) {
	services := []models.Service{
		svc(1, "Cleaning", "9am", "10am", "11am"),
		svc(2, "Whitening", "9am", "10am"),
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
		{Treatment: "Cleaning", Slot: "11am"},
		{Treatment: "Whitening", Slot: "10am"},
	}

	out := ComputeAvailability(services, bookings)

	booked := map[string]map[string]bool{
		"Cleaning":  {"9am": true, "11am": true},
		"Whitening": {"10am": true},
	}
	for _, o := range out {
		for _, slot := range o.Slots {
			if booked[o.Name][slot] {
				t.Errorf("%s: booked slot %q leaked into open slots", o.Name, slot)
			}
		}
	}
}

func TestComputeAvailabilityFullyBookedService(t *testing.T) {
	services := []models.Service{
		svc(1, "Cleaning", "9am"),
	}
	bookings := []models.Booking{
		{Treatment: "Cleaning", Slot: "9am"},
	}

	out := ComputeAvailability(services, bookings)

	if len(out[0].Slots) != 0 {
		t.Errorf("expected no open slots, got %v", out[0].Slots)
	}
}
