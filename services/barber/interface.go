package barber

import (
	"context"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
)

// DefaultBarberService is the production implementation.
type DefaultBarberService struct {
	Repo barberRepo.BarberRepository
}

// AuthResponse carries the signed token alongside the authenticated profile.
type AuthResponse struct {
	Token  string        `json:"token"`
	Barber models.Barber `json:"barber"`
}

type BarberService interface {
	// Registration and authentication.
	Register(ctx context.Context, barber models.Barber) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)

	// Account management.
	GetByID(ctx context.Context, id string) (*models.Barber, error)
	GetPublicProfile(ctx context.Context, id string) (*models.Barber, error)
	UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*models.Barber, error)
	DeleteAccount(ctx context.Context, id string) error

	// Weekly availability.
	SetAvailability(ctx context.Context, id string, avail models.Availability) error
	GetAvailability(ctx context.Context, id string) (*models.Availability, error)
}
