package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"touching end-to-start is not a conflict", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching start-to-end is not a conflict", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"partial overlap conflicts", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"containment conflicts", at(9, 0), at(12, 0), at(10, 0), at(10, 30), true},
		{"identical ranges conflict", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"disjoint ranges do not conflict", at(9, 0), at(9, 30), at(11, 0), at(11, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestLocalDayWindow(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	at := time.Date(2025, time.June, 2, 14, 30, 0, 0, loc)

	start, end := localDayWindow(at)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, loc), end)
}
