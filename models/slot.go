package models

import "time"

// CandidateSlot is a computed, not-yet-reserved bookable range. It is derived
// from the weekly availability for one calendar date and never persisted.
type CandidateSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
