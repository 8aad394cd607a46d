package catalog

import (
	"context"
	"testing"

	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memServiceRepo is an in-memory ServiceRepository.
type memServiceRepo struct {
	services map[string]*models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]*models.Service)}
}

func (m *memServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	cp := *svc
	m.services[svc.ID] = &cp
	return nil
}

func (m *memServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	cp := *svc
	return &cp, nil
}

func (m *memServiceRepo) ListByBarber(ctx context.Context, barberID string) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range m.services {
		if svc.BarberID == barberID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (m *memServiceRepo) Update(ctx context.Context, barberID, id string, fields map[string]any) error {
	svc, ok := m.services[id]
	if !ok || svc.BarberID != barberID {
		return serviceRepo.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			svc.Name = v.(string)
		case "price":
			svc.Price = v.(float64)
		case "durationMinutes":
			if n, ok := v.(int); ok {
				svc.DurationMinutes = n
			} else {
				svc.DurationMinutes = int(v.(float64))
			}
		case "description":
			svc.Description = v.(string)
		}
	}
	return nil
}

func (m *memServiceRepo) Delete(ctx context.Context, barberID, id string) error {
	svc, ok := m.services[id]
	if !ok || svc.BarberID != barberID {
		return serviceRepo.ErrNotFound
	}
	delete(m.services, id)
	return nil
}

func TestCreateService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	created, err := svc.Create(context.Background(), models.Service{
		BarberID:        "barber-1",
		Name:            "  Fade  ",
		DurationMinutes: 45,
		Price:           60,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Fade", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Service{BarberID: "b", Name: "Cut", DurationMinutes: 0})
	assert.Error(t, err, "zero duration")

	_, err = svc.Create(ctx, models.Service{BarberID: "b", Name: "Cut", DurationMinutes: -30})
	assert.Error(t, err, "negative duration")

	_, err = svc.Create(ctx, models.Service{BarberID: "b", Name: "", DurationMinutes: 30})
	assert.Error(t, err, "empty name")

	_, err = svc.Create(ctx, models.Service{BarberID: "b", Name: "Cut", DurationMinutes: 30, Price: -1})
	assert.Error(t, err, "negative price")
}

func TestUpdateServiceScopedToOwner(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Service{BarberID: "barber-1", Name: "Cut", DurationMinutes: 30, Price: 40})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "barber-2", created.ID, map[string]interface{}{"price": 99.0})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(ctx, "barber-1", created.ID, map[string]interface{}{"price": 50.0})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
}

func TestUpdateServiceRejectsBadFields(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Service{BarberID: "barber-1", Name: "Cut", DurationMinutes: 30})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "barber-1", created.ID, map[string]interface{}{"barberId": "barber-2"})
	assert.Error(t, err, "ownership is not updatable")

	_, err = svc.Update(ctx, "barber-1", created.ID, map[string]interface{}{"durationMinutes": -10})
	assert.Error(t, err, "negative duration rejected on update")

	_, err = svc.Update(ctx, "barber-1", created.ID, map[string]interface{}{})
	assert.Error(t, err, "empty update rejected")
}

func TestDeleteServiceScopedToOwner(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Service{BarberID: "barber-1", Name: "Cut", DurationMinutes: 30})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "barber-2", created.ID), ErrNotFound)
	assert.NoError(t, svc.Delete(ctx, "barber-1", created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByBarberEmpty(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}
	services, err := svc.ListByBarber(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}
