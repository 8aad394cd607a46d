package scheduling

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mins(h, m int) int { return h*60 + m }

// monday is a fixed reference date (2025-06-02 was a Monday).
var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func weekdayAvail(open, close, interval int) models.Availability {
	avail := models.Availability{SlotInterval: interval}
	for d := time.Sunday; d <= time.Saturday; d++ {
		avail.Days[d] = models.DaySchedule{Active: true, Open: open, Close: close}
	}
	return avail
}

func TestGenerateSlotsOrdering(t *testing.T) {
	avail := weekdayAvail(mins(9, 0), mins(18, 0), 30)
	slots := GenerateSlots(avail, monday, 30)
	require.NotEmpty(t, slots)

	dayOpen := monday.Add(time.Duration(mins(9, 0)) * time.Minute)
	dayClose := monday.Add(time.Duration(mins(18, 0)) * time.Minute)
	for i, s := range slots {
		assert.False(t, s.StartTime.Before(dayOpen), "slot %d starts before opening", i)
		assert.False(t, s.EndTime.After(dayClose), "slot %d ends after closing", i)
		if i > 0 {
			assert.True(t, slots[i-1].StartTime.Before(s.StartTime), "slots must be strictly increasing")
		}
	}
}

func TestGenerateSlotsClosedDay(t *testing.T) {
	avail := weekdayAvail(mins(9, 0), mins(18, 0), 30)
	avail.Days[time.Monday].Active = false

	slots := GenerateSlots(avail, monday, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlotsTrailingSlotDropped(t *testing.T) {
	// 09:00-10:00, interval 30, duration 45: 09:00 fits (ends 09:45),
	// 09:30 would end 10:15 and is dropped.
	avail := weekdayAvail(mins(9, 0), mins(10, 0), 30)
	slots := GenerateSlots(avail, monday, 45)

	require.Len(t, slots, 1)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartTime)
	assert.Equal(t, monday.Add(9*time.Hour+45*time.Minute), slots[0].EndTime)
}

func TestGenerateSlotsShortClosingWindow(t *testing.T) {
	// 09:00-09:50, interval 30, duration 30: only 09:00-09:30; a 09:30
	// start would end at 10:00, past closing.
	avail := weekdayAvail(mins(9, 0), mins(9, 50), 30)
	slots := GenerateSlots(avail, monday, 30)

	require.Len(t, slots, 1)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartTime)
}

func TestGenerateSlotsDurationExceedsDay(t *testing.T) {
	avail := weekdayAvail(mins(9, 0), mins(10, 0), 30)
	assert.Empty(t, GenerateSlots(avail, monday, 90))
}

func TestGenerateSlotsUnevenInterval(t *testing.T) {
	// Interval does not divide the open span; the walk terminates on the
	// step count, not on divisibility.
	avail := weekdayAvail(mins(9, 0), mins(11, 0), 40)
	slots := GenerateSlots(avail, monday, 30)

	require.Len(t, slots, 3)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartTime)
	assert.Equal(t, monday.Add(9*time.Hour+40*time.Minute), slots[1].StartTime)
	assert.Equal(t, monday.Add(10*time.Hour+20*time.Minute), slots[2].StartTime)
}

func TestGenerateSlotsDefaultInterval(t *testing.T) {
	avail := weekdayAvail(mins(9, 0), mins(10, 30), 0)
	slots := GenerateSlots(avail, monday, 30)

	require.Len(t, slots, 3)
	assert.Equal(t, monday.Add(9*time.Hour+30*time.Minute), slots[1].StartTime)
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	avail := weekdayAvail(mins(8, 15), mins(17, 45), 25)
	first := GenerateSlots(avail, monday, 35)
	second := GenerateSlots(avail, monday, 35)
	assert.Equal(t, first, second)
}

func TestGenerateSlotsNonPositiveDuration(t *testing.T) {
	avail := weekdayAvail(mins(9, 0), mins(18, 0), 30)
	assert.Empty(t, GenerateSlots(avail, monday, 0))
	assert.Empty(t, GenerateSlots(avail, monday, -15))
}
