package scheduling

import (
	"context"
	"time"
)

// overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Boundary touches are not conflicts: a booking
// ending at 10:00 and one starting at 10:00 coexist.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// localDayWindow returns the [midnight, next midnight) window around t in
// t's location.
func localDayWindow(t time.Time) (time.Time, time.Time) {
	dayStart := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}

// HasConflict scans the candidate's whole calendar day of confirmed bookings
// and applies the overlap predicate. The scan is day-wide on purpose: an
// earlier same-day booking can still overlap a long candidate. Used alone
// this check is advisory; the booking commit re-validates inside the store
// transaction.
func (se *DefaultSchedulingEngine) HasConflict(ctx context.Context, barberID string, start, end time.Time) (bool, error) {
	dayStart, dayEnd := localDayWindow(start)
	existing, err := se.Bookings.ListConfirmedBetween(ctx, barberID, dayStart, dayEnd)
	if err != nil {
		return false, NewStoreError("failed to load bookings for conflict check", err)
	}
	for _, b := range existing {
		if overlaps(start, end, b.StartTime, b.EndTime) {
			return true, nil
		}
	}
	return false, nil
}
