package barberRepo

import (
	"context"
	"time"

	"barberbook/models"
)

// BarberRepository defines persistence operations for barber profiles.
// Availability and plan state are embedded in the profile document and
// updated with targeted $set operations so that fields written by external
// admin tooling survive untouched.
type BarberRepository interface {
	Create(ctx context.Context, barber *models.Barber) error
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetByEmail(ctx context.Context, email string) (*models.Barber, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error

	SetAvailability(ctx context.Context, id string, avail models.Availability) error
	GetAvailability(ctx context.Context, id string) (*models.Availability, error)

	SetPlan(ctx context.Context, id, plan string, isPremium bool, trialStart, trialEnd *time.Time) error
	ExpireTrials(ctx context.Context, now time.Time) (int64, error)
}
