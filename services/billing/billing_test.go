package billing

import (
	"context"
	"testing"
	"time"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

// memBarberRepo stores barbers keyed by id and records SetPlan calls.
type memBarberRepo struct {
	barbers map[string]*models.Barber
}

func newMemBarberRepo(barbers ...*models.Barber) *memBarberRepo {
	repo := &memBarberRepo{barbers: make(map[string]*models.Barber)}
	for _, b := range barbers {
		repo.barbers[b.ID] = b
	}
	return repo
}

func (m *memBarberRepo) Create(ctx context.Context, b *models.Barber) error {
	m.barbers[b.ID] = b
	return nil
}

func (m *memBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	b, ok := m.barbers[id]
	if !ok {
		return nil, barberRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBarberRepo) GetByEmail(ctx context.Context, email string) (*models.Barber, error) {
	for _, b := range m.barbers {
		if b.Email == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, barberRepo.ErrNotFound
}

func (m *memBarberRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (m *memBarberRepo) Delete(ctx context.Context, id string) error { return nil }
func (m *memBarberRepo) SetAvailability(ctx context.Context, id string, avail models.Availability) error {
	return nil
}
func (m *memBarberRepo) GetAvailability(ctx context.Context, id string) (*models.Availability, error) {
	return nil, barberRepo.ErrNotFound
}

func (m *memBarberRepo) SetPlan(ctx context.Context, id, plan string, isPremium bool, trialStart, trialEnd *time.Time) error {
	b, ok := m.barbers[id]
	if !ok {
		return barberRepo.ErrNotFound
	}
	b.Plan = plan
	b.IsPremium = isPremium
	b.TrialStart = trialStart
	b.TrialEnd = trialEnd
	return nil
}

func (m *memBarberRepo) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, b := range m.barbers {
		if b.Plan == models.PlanTrial && b.TrialEnd != nil && !b.TrialEnd.After(now) {
			b.Plan = models.PlanFree
			b.IsPremium = false
			b.TrialStart = nil
			b.TrialEnd = nil
			n++
		}
	}
	return n, nil
}

// fakePlatformRepo serves a fixed platform config.
type fakePlatformRepo struct {
	cfg    models.PlatformConfig
	merged map[string]any
}

func (f *fakePlatformRepo) GetConfig(ctx context.Context) (*models.PlatformConfig, error) {
	cp := f.cfg
	return &cp, nil
}

func (f *fakePlatformRepo) MergeConfig(ctx context.Context, payload map[string]any) error {
	if f.merged == nil {
		f.merged = make(map[string]any)
	}
	for k, v := range payload {
		f.merged[k] = v
	}
	return nil
}

func TestStartTrial(t *testing.T) {
	repo := newMemBarberRepo(&models.Barber{ID: "b1", Plan: models.PlanFree})
	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{}}

	barber, err := svc.StartTrial(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, models.PlanTrial, barber.Plan)
	assert.True(t, barber.IsPremium)
	require.NotNil(t, barber.TrialStart)
	require.NotNil(t, barber.TrialEnd)
	assert.True(t, barber.TrialEnd.After(*barber.TrialStart))

	stored := repo.barbers["b1"]
	assert.Equal(t, models.PlanTrial, stored.Plan)
}

func TestStartTrialNotEligible(t *testing.T) {
	now := time.Now().UTC()
	repo := newMemBarberRepo(
		&models.Barber{ID: "premium", Plan: models.PlanPremium, IsPremium: true},
		&models.Barber{ID: "on-trial", Plan: models.PlanTrial, IsPremium: true, TrialStart: &now},
	)
	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{}}
	ctx := context.Background()

	_, err := svc.StartTrial(ctx, "premium")
	assert.ErrorIs(t, err, ErrTrialNotAvailable)

	_, err = svc.StartTrial(ctx, "on-trial")
	assert.ErrorIs(t, err, ErrTrialNotAvailable)

	_, err = svc.StartTrial(ctx, "missing")
	assert.Error(t, err)
}

func TestPromoteAndDemote(t *testing.T) {
	now := time.Now().UTC()
	repo := newMemBarberRepo(&models.Barber{ID: "b1", Plan: models.PlanTrial, IsPremium: true, TrialStart: &now, TrialEnd: &now})
	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{}}
	ctx := context.Background()

	require.NoError(t, svc.Promote(ctx, "b1"))
	assert.Equal(t, models.PlanPremium, repo.barbers["b1"].Plan)
	assert.True(t, repo.barbers["b1"].IsPremium)
	assert.Nil(t, repo.barbers["b1"].TrialStart, "promotion clears trial state")

	require.NoError(t, svc.Demote(ctx, "b1"))
	assert.Equal(t, models.PlanFree, repo.barbers["b1"].Plan)
	assert.False(t, repo.barbers["b1"].IsPremium)
}

func TestCreateCheckoutSessionDisabled(t *testing.T) {
	repo := newMemBarberRepo(&models.Barber{ID: "b1", Plan: models.PlanFree})

	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{
		cfg: models.PlatformConfig{StripeEnabled: false},
	}}
	_, err := svc.CreateCheckoutSession(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrCheckoutDisabled)

	// Enabled but without a configured price is still disabled.
	svc = &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{
		cfg: models.PlatformConfig{StripeEnabled: true},
	}}
	_, err = svc.CreateCheckoutSession(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrCheckoutDisabled)
}

func TestHandleCheckoutCompleted(t *testing.T) {
	repo := newMemBarberRepo(&models.Barber{ID: "b1", Plan: models.PlanFree})
	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{}}

	session := &stripe.CheckoutSession{
		ID:       "cs_test",
		Metadata: map[string]string{"barberId": "b1"},
	}
	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), session))
	assert.Equal(t, models.PlanPremium, repo.barbers["b1"].Plan)
}

func TestHandleCheckoutCompletedMissingMetadata(t *testing.T) {
	repo := newMemBarberRepo(&models.Barber{ID: "b1", Plan: models.PlanFree})
	svc := &DefaultBillingService{Barbers: repo, Platform: &fakePlatformRepo{}}

	session := &stripe.CheckoutSession{ID: "cs_test", Metadata: map[string]string{}}
	require.NoError(t, svc.HandleCheckoutCompleted(context.Background(), session))
	assert.Equal(t, models.PlanFree, repo.barbers["b1"].Plan, "no metadata, no promotion")
}

func TestUpdatePlatformConfigStripsDocumentKey(t *testing.T) {
	platform := &fakePlatformRepo{}
	svc := &DefaultBillingService{Barbers: newMemBarberRepo(), Platform: platform}

	err := svc.UpdatePlatformConfig(context.Background(), map[string]interface{}{
		"_id":           "evil",
		"stripeEnabled": true,
	})
	require.NoError(t, err)
	assert.NotContains(t, platform.merged, "_id")
	assert.Equal(t, true, platform.merged["stripeEnabled"])
}
