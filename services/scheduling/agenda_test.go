package scheduling

import (
	"context"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientInfoNamed(name string) models.ClientInfo {
	return models.ClientInfo{Name: name}
}

func TestListBookings(t *testing.T) {
	engine, store, _ := newTestEngine(weekdayAvail(mins(9, 0), mins(18, 0), 30))
	store.bookings = append(store.bookings,
		confirmedBooking("b1", monday.Add(9*time.Hour), monday.Add(9*time.Hour+30*time.Minute)),
		confirmedBooking("b2", monday.Add(10*time.Hour), monday.Add(10*time.Hour+30*time.Minute)),
	)
	cancelled := confirmedBooking("b3", monday.Add(11*time.Hour), monday.Add(11*time.Hour+30*time.Minute))
	cancelled.Status = models.BookingCancelled
	store.bookings = append(store.bookings, cancelled)

	bookings, err := engine.ListBookings(context.Background(), testBarber, monday, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, bookings, 3, "cancelled bookings stay visible on the agenda")

	_, err = engine.ListBookings(context.Background(), testBarber, monday.AddDate(0, 0, 1), monday)
	assert.True(t, IsValidation(err), "inverted range")
}

func TestCancelBookingFreesSlot(t *testing.T) {
	engine, _, _ := newTestEngine(weekdayAvail(mins(9, 0), mins(12, 0), 30))
	start := monday.Add(10 * time.Hour)

	booking, err := engine.Book(context.Background(), testBarber, testService, start, clientInfoNamed("first"))
	require.NoError(t, err)

	_, err = engine.Book(context.Background(), testBarber, testService, start, clientInfoNamed("second"))
	require.True(t, IsConflict(err))

	require.NoError(t, engine.CancelBooking(context.Background(), testBarber, booking.ID))

	_, err = engine.Book(context.Background(), testBarber, testService, start, clientInfoNamed("second"))
	assert.NoError(t, err, "a cancelled booking's slot is bookable again")
}

func TestCancelBookingScopedToOwner(t *testing.T) {
	engine, _, _ := newTestEngine(weekdayAvail(mins(9, 0), mins(12, 0), 30))

	booking, err := engine.Book(context.Background(), testBarber, testService, monday.Add(9*time.Hour), clientInfoNamed("jo"))
	require.NoError(t, err)

	err = engine.CancelBooking(context.Background(), "other-barber", booking.ID)
	assert.True(t, IsNotFound(err))

	err = engine.CancelBooking(context.Background(), testBarber, "missing")
	assert.True(t, IsNotFound(err))
}
