package models

import "time"

// Product is a stock item owned by a barber.
type Product struct {
	ID        string    `bson:"id" json:"id"`
	BarberID  string    `bson:"barberId" json:"barberId"`
	Name      string    `bson:"name" json:"name"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	UnitCost  float64   `bson:"unitCost" json:"unitCost"`
	Supplier  string    `bson:"supplier,omitempty" json:"supplier,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
