package models

import "time"

// Ledger entry statuses.
const (
	LedgerPending = "pending"
	LedgerPaid    = "paid"
)

// LedgerEntry is a receivable created when a booking is confirmed. Marking it
// paid is a manual action by the barber.
type LedgerEntry struct {
	ID          string     `bson:"id" json:"id"`
	BarberID    string     `bson:"barberId" json:"barberId"`
	BookingID   string     `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	ClientName  string     `bson:"clientName" json:"clientName"`
	ServiceName string     `bson:"serviceName" json:"serviceName"`
	Amount      float64    `bson:"amount" json:"amount"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	PaidAt      *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// LedgerSummary aggregates receivables for a barber.
type LedgerSummary struct {
	PendingTotal float64 `json:"pendingTotal"`
	PaidTotal    float64 `json:"paidTotal"`
	EntryCount   int     `json:"entryCount"`
}
