package models

import "time"

// Plan states for a barber account.
const (
	PlanFree    = "free"
	PlanTrial   = "trial"
	PlanPremium = "premium"
)

// Barber is the provider document. Availability and plan state live on the
// profile itself; services, bookings, inventory and ledger entries reference
// it by id.
type Barber struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Email       string  `bson:"email" json:"email"`
	Phone       string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	PublicLink  string  `bson:"publicLink" json:"publicLink"`

	Plan       string     `bson:"plan" json:"plan"`
	IsPremium  bool       `bson:"isPremium" json:"isPremium"`
	IsAdmin    bool       `bson:"isAdmin,omitempty" json:"isAdmin,omitempty"`
	TrialStart *time.Time `bson:"trialStart,omitempty" json:"trialStart,omitempty"`
	TrialEnd   *time.Time `bson:"trialEnd,omitempty" json:"trialEnd,omitempty"`

	Availability *Availability `bson:"availability,omitempty" json:"availability,omitempty"`

	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// PublicProfile strips private fields for unauthenticated reads.
func (b *Barber) PublicProfile() Barber {
	return Barber{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PublicLink:  b.PublicLink,
		IsPremium:   b.IsPremium,
	}
}
