package models

// DaySchedule is one weekday's bookable window. Open and Close are minutes
// from midnight (e.g., 540 for 9:00 AM). Inactive days carry no bookable
// range regardless of Open/Close.
type DaySchedule struct {
	Active bool `bson:"active" json:"active"`
	Open   int  `bson:"open" json:"open"`
	Close  int  `bson:"close" json:"close"`
}

// Availability is a barber's declarative weekly schedule. Days is indexed by
// time.Weekday (Sunday = 0). SlotInterval is the default granularity between
// candidate slot start times, in minutes.
type Availability struct {
	SlotInterval int            `bson:"slotInterval" json:"slotInterval"`
	Days         [7]DaySchedule `bson:"days" json:"days"`
}
