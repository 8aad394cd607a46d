package serviceRepo

import (
	"context"
	"errors"

	"barberbook/models"
)

// ErrNotFound is returned when no service matches the query.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines persistence operations for a barber's catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByBarber(ctx context.Context, barberID string) ([]models.Service, error)
	Update(ctx context.Context, barberID, id string, fields map[string]any) error
	Delete(ctx context.Context, barberID, id string) error
}
