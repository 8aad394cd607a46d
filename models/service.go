package models

import "time"

// Service is a bookable offering owned by a barber. Administrative edits do
// not retroactively change existing bookings, which snapshot the service name
// and price at creation time.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	BarberID        string    `bson:"barberId" json:"barberId"`
	Name            string    `bson:"name" json:"name"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
