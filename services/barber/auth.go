package barber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"barberbook/config"
	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// ErrInvalidCredentials is returned for a wrong email or password. Both cases
// collapse into one error so callers cannot probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("email already registered")

// Register creates a barber account, hashes the password and returns a signed
// token so the client is authenticated immediately.
func (s *DefaultBarberService) Register(ctx context.Context, barber models.Barber) (*AuthResponse, error) {
	barber.Email = strings.ToLower(strings.TrimSpace(barber.Email))
	if barber.Email == "" || barber.Name == "" {
		return nil, fmt.Errorf("name and email are required")
	}
	if len(barber.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if existing, err := s.Repo.GetByEmail(ctx, barber.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, barberRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(barber.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Self-registration starts from a clean free account. Plan, admin and
	// trial state are never taken from the caller.
	barber.ID = uuid.New().String()
	barber.PasswordHash = string(hash)
	barber.Password = ""
	barber.Plan = models.PlanFree
	barber.IsPremium = false
	barber.IsAdmin = false
	barber.TrialStart = nil
	barber.TrialEnd = nil
	barber.Availability = nil
	barber.PublicLink = publicBookingLink(barber.ID)
	barber.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(ctx, &barber); err != nil {
		return nil, fmt.Errorf("failed to create barber: %w", err)
	}

	token, err := utils.GenerateToken(barber.ID, barber.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, Barber: barber}, nil
}

// Authenticate verifies credentials and returns a fresh signed token.
func (s *DefaultBarberService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	barber, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		utils.GetLogger().Error("failed to fetch barber for authentication", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(barber.ID, barber.Email, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, Barber: *barber}, nil
}

// publicBookingLink builds the shareable booking URL for a barber.
func publicBookingLink(barberID string) string {
	base := strings.TrimSuffix(config.AppConfig.PublicBaseURL, "/")
	return fmt.Sprintf("%s/book/%s", base, barberID)
}
