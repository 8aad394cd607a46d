package scheduling

import (
	"context"
	"errors"
	"time"

	bookingRepo "barberbook/database/repository/booking"
	"barberbook/models"
)

// ListBookings returns every booking for the barber starting inside
// [from, to), cancelled ones included, ordered by start time.
func (se *DefaultSchedulingEngine) ListBookings(ctx context.Context, barberID string, from, to time.Time) ([]models.Booking, error) {
	if barberID == "" {
		return nil, NewValidationError("missing barber id")
	}
	if !from.Before(to) {
		return nil, NewValidationError("invalid time range")
	}
	bookings, err := se.Bookings.ListForBarberBetween(ctx, barberID, from, to)
	if err != nil {
		return nil, NewStoreError("failed to list bookings", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// CancelBooking marks a booking cancelled, which frees its slot for new
// bookings. The booking document stays behind for the barber's records.
func (se *DefaultSchedulingEngine) CancelBooking(ctx context.Context, barberID, bookingID string) error {
	if barberID == "" || bookingID == "" {
		return NewValidationError("missing barber or booking id")
	}
	if err := se.Bookings.Cancel(ctx, barberID, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return NewNotFoundError("booking not found")
		}
		return NewStoreError("failed to cancel booking", err)
	}
	return nil
}
