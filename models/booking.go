package models

import "time"

// Booking statuses. Only confirmed bookings participate in conflict checks.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a confirmed reservation of a barber for one service. The time
// range and parties are fixed at creation; only Status may change afterwards.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	BarberID    string    `bson:"barberId" json:"barberId"`
	ClientID    string    `bson:"clientId" json:"clientId"`
	ClientName  string    `bson:"clientName" json:"clientName"`
	ClientPhone string    `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Price       float64   `bson:"price" json:"price"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ClientInfo identifies the booking party. ID is empty for anonymous
// walk-in bookings made through the public link.
type ClientInfo struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}
