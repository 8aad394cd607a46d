package scheduling

import (
	"context"
	"time"

	"barberbook/models"
)

// AvailabilitySource serves weekly schedules for slot generation. In
// production this is the barber service's cache-backed read, so public slot
// listings do not hit the store on every request.
type AvailabilitySource interface {
	GetAvailability(ctx context.Context, id string) (*models.Availability, error)
}

// SchedulingEngine is the public scheduling surface: list bookable slots for
// a date and commit a booking against one of them.
type SchedulingEngine interface {
	ListAvailableSlots(ctx context.Context, barberID string, date time.Time, serviceID string) ([]models.CandidateSlot, error)
	HasConflict(ctx context.Context, barberID string, start, end time.Time) (bool, error)
	Book(ctx context.Context, barberID, serviceID string, start time.Time, client models.ClientInfo) (*models.Booking, error)
	ListBookings(ctx context.Context, barberID string, from, to time.Time) ([]models.Booking, error)
	CancelBooking(ctx context.Context, barberID, bookingID string) error
}
