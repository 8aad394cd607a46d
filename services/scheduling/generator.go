package scheduling

import (
	"time"

	"barberbook/models"
)

// defaultSlotInterval is used when a saved availability predates the
// interval field.
const defaultSlotInterval = 30

// GenerateSlots expands a weekly availability into the candidate slots for
// one calendar date and service duration. The walk starts at the day's open
// time and advances by the slot interval; a candidate is kept only when its
// full duration fits before closing, so a trailing slot that would overrun
// is dropped rather than truncated. Closed days yield nil, which callers
// treat as "closed", not as an error.
//
// The result is strictly increasing by start time and fully deterministic.
func GenerateSlots(avail models.Availability, date time.Time, durationMinutes int) []models.CandidateSlot {
	if durationMinutes <= 0 {
		return nil
	}

	day := avail.Days[date.Weekday()]
	if !day.Active {
		return nil
	}

	interval := avail.SlotInterval
	if interval <= 0 {
		interval = defaultSlotInterval
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []models.CandidateSlot
	for t := day.Open; t < day.Close; t += interval {
		if t+durationMinutes > day.Close {
			continue
		}
		start := midnight.Add(time.Duration(t) * time.Minute)
		slots = append(slots, models.CandidateSlot{
			StartTime: start,
			EndTime:   start.Add(time.Duration(durationMinutes) * time.Minute),
		})
	}
	return slots
}
