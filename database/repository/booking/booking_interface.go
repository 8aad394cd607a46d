package bookingRepo

import (
	"context"
	"errors"
	"time"

	"barberbook/models"
)

// ErrSlotTaken is returned by CreateIfFree when a conflicting confirmed
// booking already exists at commit time.
var ErrSlotTaken = errors.New("slot already taken")

// ErrNotFound is returned when no booking matches the query.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for bookings.
//
// CreateIfFree is the single atomicity unit of the scheduling core: it
// re-reads the confirmed bookings that could overlap the prospective one and
// inserts the new record in one store-level transaction, failing with
// ErrSlotTaken if an overlap exists. The unguarded read-then-write of the
// advisory conflict check is never trusted for the final commit.
type BookingRepository interface {
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListConfirmedBetween(ctx context.Context, barberID string, dayStart, dayEnd time.Time) ([]models.Booking, error)
	ListForBarberBetween(ctx context.Context, barberID string, from, to time.Time) ([]models.Booking, error)
	Cancel(ctx context.Context, barberID, bookingID string) error
}
