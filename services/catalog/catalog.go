package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no service matches the query for the barber.
var ErrNotFound = errors.New("service not found")

// CatalogService manages a barber's bookable offerings.
type CatalogService interface {
	Create(ctx context.Context, svc models.Service) (*models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByBarber(ctx context.Context, barberID string) ([]models.Service, error)
	Update(ctx context.Context, barberID, id string, updates map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, barberID, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

var updatableServiceFields = map[string]bool{
	"name":            true,
	"durationMinutes": true,
	"price":           true,
	"description":     true,
}

// Create validates and persists a new service. Duration must be positive
// because it drives slot generation.
func (s *DefaultCatalogService) Create(ctx context.Context, svc models.Service) (*models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.BarberID == "" {
		return nil, fmt.Errorf("missing barber id")
	}
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}
	if svc.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	svc.ID = uuid.New().String()
	svc.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, &svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultCatalogService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) ListByBarber(ctx context.Context, barberID string) ([]models.Service, error) {
	services, err := s.Repo.ListByBarber(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, nil
}

// Update applies whitelisted fields. Existing bookings keep the name and
// price they were created with.
func (s *DefaultCatalogService) Update(ctx context.Context, barberID, id string, updates map[string]interface{}) (*models.Service, error) {
	fields := make(map[string]any, len(updates))
	for k, v := range updates {
		if !updatableServiceFields[k] {
			return nil, fmt.Errorf("field %q cannot be updated", k)
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if d, ok := fields["durationMinutes"]; ok {
		if dur, ok := toInt(d); !ok || dur <= 0 {
			return nil, fmt.Errorf("duration must be a positive number of minutes")
		}
	}

	if err := s.Repo.Update(ctx, barberID, id, fields); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *DefaultCatalogService) Delete(ctx context.Context, barberID, id string) error {
	if err := s.Repo.Delete(ctx, barberID, id); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

// toInt accepts the numeric types a decoded JSON body or a caller may hand
// over for a duration.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
