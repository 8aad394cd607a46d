package barber

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
)

func schedule(active bool, open, close int) models.DaySchedule {
	return models.DaySchedule{Active: active, Open: open, Close: close}
}

func TestValidateAvailability(t *testing.T) {
	valid := models.Availability{SlotInterval: 30}
	for d := time.Sunday; d <= time.Saturday; d++ {
		valid.Days[d] = schedule(true, 9*60, 18*60)
	}
	assert.NoError(t, validateAvailability(valid))

	t.Run("negative interval rejected", func(t *testing.T) {
		avail := valid
		avail.SlotInterval = -10
		assert.Error(t, validateAvailability(avail))
	})

	t.Run("zero interval allowed, falls back to default", func(t *testing.T) {
		avail := valid
		avail.SlotInterval = 0
		assert.NoError(t, validateAvailability(avail))
	})

	t.Run("open after close rejected", func(t *testing.T) {
		avail := valid
		avail.Days[time.Tuesday] = schedule(true, 18*60, 9*60)
		assert.Error(t, validateAvailability(avail))
	})

	t.Run("open equals close rejected", func(t *testing.T) {
		avail := valid
		avail.Days[time.Tuesday] = schedule(true, 9*60, 9*60)
		assert.Error(t, validateAvailability(avail))
	})

	t.Run("inactive day skips window checks", func(t *testing.T) {
		avail := valid
		avail.Days[time.Sunday] = schedule(false, 0, 0)
		assert.NoError(t, validateAvailability(avail))
	})

	t.Run("window outside the day rejected", func(t *testing.T) {
		avail := valid
		avail.Days[time.Friday] = schedule(true, 9*60, 25*60)
		assert.Error(t, validateAvailability(avail))

		avail.Days[time.Friday] = schedule(true, -30, 10*60)
		assert.Error(t, validateAvailability(avail))
	})
}
