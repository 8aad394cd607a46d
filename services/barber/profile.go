package barber

import (
	"context"
	"errors"
	"fmt"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
)

// ErrNotFound is returned when no barber matches the query.
var ErrNotFound = errors.New("barber not found")

// Profile fields a barber may change after registration. Plan and admin
// state are managed elsewhere and never pass through UpdateProfile.
var updatableProfileFields = map[string]bool{
	"name":        true,
	"phone":       true,
	"description": true,
}

func (s *DefaultBarberService) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	barber, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch barber: %w", err)
	}
	return barber, nil
}

// GetPublicProfile returns the unauthenticated view of a barber profile, the
// one served behind the shareable booking link.
func (s *DefaultBarberService) GetPublicProfile(ctx context.Context, id string) (*models.Barber, error) {
	barber, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := barber.PublicProfile()
	return &public, nil
}

func (s *DefaultBarberService) UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*models.Barber, error) {
	fields := make(map[string]any, len(updates))
	for k, v := range updates {
		if !updatableProfileFields[k] {
			return nil, fmt.Errorf("field %q cannot be updated", k)
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateProfile(ctx, id, fields); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update barber: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultBarberService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete barber: %w", err)
	}
	invalidateAvailabilityCache(ctx, id)
	return nil
}
