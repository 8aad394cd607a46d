package barber

import (
	"context"
	"testing"
	"time"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// captureBarberRepo records the document handed to Create.
type captureBarberRepo struct {
	created  *models.Barber
	existing *models.Barber
}

func (r *captureBarberRepo) Create(ctx context.Context, b *models.Barber) error {
	cp := *b
	r.created = &cp
	return nil
}

func (r *captureBarberRepo) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	if r.created != nil && r.created.ID == id {
		cp := *r.created
		return &cp, nil
	}
	return nil, barberRepo.ErrNotFound
}

func (r *captureBarberRepo) GetByEmail(ctx context.Context, email string) (*models.Barber, error) {
	if r.existing != nil && r.existing.Email == email {
		cp := *r.existing
		return &cp, nil
	}
	return nil, barberRepo.ErrNotFound
}

func (r *captureBarberRepo) UpdateProfile(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (r *captureBarberRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *captureBarberRepo) SetAvailability(ctx context.Context, id string, avail models.Availability) error {
	return nil
}
func (r *captureBarberRepo) GetAvailability(ctx context.Context, id string) (*models.Availability, error) {
	return nil, barberRepo.ErrNotFound
}
func (r *captureBarberRepo) SetPlan(ctx context.Context, id, plan string, isPremium bool, trialStart, trialEnd *time.Time) error {
	return nil
}
func (r *captureBarberRepo) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func TestRegister(t *testing.T) {
	repo := &captureBarberRepo{}
	svc := &DefaultBarberService{Repo: repo}

	resp, err := svc.Register(context.Background(), models.Barber{
		Name:     "Sam",
		Email:    "Sam@Example.com",
		Password: "long-enough-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "sam@example.com", repo.created.Email, "email is normalized")
	assert.Equal(t, models.PlanFree, repo.created.Plan)
	assert.Empty(t, repo.created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("long-enough-pass")))
	assert.Contains(t, repo.created.PublicLink, repo.created.ID)
}

func TestRegisterStripsPrivilegedFields(t *testing.T) {
	repo := &captureBarberRepo{}
	svc := &DefaultBarberService{Repo: repo}

	now := time.Now().UTC()
	_, err := svc.Register(context.Background(), models.Barber{
		Name:         "Mallory",
		Email:        "mallory@example.com",
		Password:     "long-enough-pass",
		IsAdmin:      true,
		IsPremium:    true,
		Plan:         models.PlanPremium,
		TrialStart:   &now,
		TrialEnd:     &now,
		Availability: &models.Availability{SlotInterval: 30},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.False(t, repo.created.IsAdmin, "self-registration must not persist isAdmin")
	assert.False(t, repo.created.IsPremium)
	assert.Equal(t, models.PlanFree, repo.created.Plan)
	assert.Nil(t, repo.created.TrialStart)
	assert.Nil(t, repo.created.TrialEnd)
	assert.Nil(t, repo.created.Availability)
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultBarberService{Repo: &captureBarberRepo{}}
	ctx := context.Background()

	_, err := svc.Register(ctx, models.Barber{Name: "Sam", Email: "s@e.com", Password: "short"})
	assert.Error(t, err, "short password")

	_, err = svc.Register(ctx, models.Barber{Email: "s@e.com", Password: "long-enough-pass"})
	assert.Error(t, err, "missing name")

	_, err = svc.Register(ctx, models.Barber{Name: "Sam", Password: "long-enough-pass"})
	assert.Error(t, err, "missing email")
}

func TestRegisterEmailTaken(t *testing.T) {
	repo := &captureBarberRepo{existing: &models.Barber{ID: "b1", Email: "sam@example.com"}}
	svc := &DefaultBarberService{Repo: repo}

	_, err := svc.Register(context.Background(), models.Barber{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "long-enough-pass",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("long-enough-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &captureBarberRepo{existing: &models.Barber{
		ID:           "b1",
		Email:        "sam@example.com",
		PasswordHash: string(hash),
	}}
	svc := &DefaultBarberService{Repo: repo}
	ctx := context.Background()

	resp, err := svc.Authenticate(ctx, "Sam@Example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "b1", resp.Barber.ID)

	_, err = svc.Authenticate(ctx, "sam@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "long-enough-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
