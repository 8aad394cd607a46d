package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/config"
	barberRepo "barberbook/database/repository/barber"
	platformRepo "barberbook/database/repository/platform"
	"barberbook/models"
	"barberbook/utils"

	"github.com/stripe/stripe-go/v76"
	checkoutSession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// ErrTrialNotAvailable is returned when the account is not eligible to start
// a trial (already premium or already on one).
var ErrTrialNotAvailable = errors.New("trial not available for this account")

// ErrCheckoutDisabled is returned when Stripe checkout is switched off in the
// platform config.
var ErrCheckoutDisabled = errors.New("online checkout is not enabled")

// BillingService manages plan state and paid upgrades.
type BillingService interface {
	StartTrial(ctx context.Context, barberID string) (*models.Barber, error)
	Promote(ctx context.Context, barberID string) error
	Demote(ctx context.Context, barberID string) error

	CreateCheckoutSession(ctx context.Context, barberID string) (string, error)
	HandleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error

	GetPlatformConfig(ctx context.Context) (*models.PlatformConfig, error)
	UpdatePlatformConfig(ctx context.Context, payload map[string]interface{}) error
}

// DefaultBillingService is the production implementation.
type DefaultBillingService struct {
	Barbers  barberRepo.BarberRepository
	Platform platformRepo.PlatformRepository
}

// StartTrial flips a free account to a time-boxed trial of the premium plan.
// One trial per account; a lapsed trial that was demoted back to free cannot
// restart through this path.
func (s *DefaultBillingService) StartTrial(ctx context.Context, barberID string) (*models.Barber, error) {
	barber, err := s.Barbers.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return nil, fmt.Errorf("barber not found")
		}
		return nil, fmt.Errorf("failed to fetch barber: %w", err)
	}
	if barber.Plan != models.PlanFree || barber.TrialStart != nil {
		return nil, ErrTrialNotAvailable
	}

	days := config.AppConfig.TrialDays
	if days <= 0 {
		days = 14
	}
	start := time.Now().UTC()
	end := start.Add(time.Duration(days) * 24 * time.Hour)

	if err := s.Barbers.SetPlan(ctx, barberID, models.PlanTrial, true, &start, &end); err != nil {
		return nil, fmt.Errorf("failed to start trial: %w", err)
	}

	barber.Plan = models.PlanTrial
	barber.IsPremium = true
	barber.TrialStart = &start
	barber.TrialEnd = &end
	return barber, nil
}

// Promote upgrades an account to the paid premium plan, clearing any trial
// state.
func (s *DefaultBillingService) Promote(ctx context.Context, barberID string) error {
	if err := s.Barbers.SetPlan(ctx, barberID, models.PlanPremium, true, nil, nil); err != nil {
		return fmt.Errorf("failed to promote barber %s: %w", barberID, err)
	}
	return nil
}

// Demote drops an account back to the free plan.
func (s *DefaultBillingService) Demote(ctx context.Context, barberID string) error {
	if err := s.Barbers.SetPlan(ctx, barberID, models.PlanFree, false, nil, nil); err != nil {
		return fmt.Errorf("failed to demote barber %s: %w", barberID, err)
	}
	return nil
}

// CreateCheckoutSession opens a Stripe subscription checkout for the premium
// plan and returns the hosted payment URL. The barber id travels in the
// session metadata so the completion webhook can promote the right account.
func (s *DefaultBillingService) CreateCheckoutSession(ctx context.Context, barberID string) (string, error) {
	cfg, err := s.Platform.GetConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load platform config: %w", err)
	}
	if !cfg.StripeEnabled || cfg.StripePriceID == "" {
		return "", ErrCheckoutDisabled
	}

	if _, err := s.Barbers.GetByID(ctx, barberID); err != nil {
		if errors.Is(err, barberRepo.ErrNotFound) {
			return "", fmt.Errorf("barber not found")
		}
		return "", fmt.Errorf("failed to fetch barber: %w", err)
	}

	base := config.AppConfig.PublicBaseURL
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(cfg.StripePriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(base + "/billing/success"),
		CancelURL:  stripe.String(base + "/billing/cancel"),
	}
	params.AddMetadata("barberId", barberID)

	sess, err := checkoutSession.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// HandleCheckoutCompleted promotes the account named in the completed
// session's metadata. Webhook signature verification happens in the handler;
// by the time the event gets here it is trusted.
func (s *DefaultBillingService) HandleCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	barberID := session.Metadata["barberId"]
	if barberID == "" {
		utils.GetLogger().Warn("checkout session completed without a barberId in metadata",
			zap.String("sessionID", session.ID))
		return nil
	}
	if err := s.Promote(ctx, barberID); err != nil {
		return err
	}
	utils.GetLogger().Info("barber promoted to premium via checkout",
		zap.String("barberID", barberID), zap.String("sessionID", session.ID))
	return nil
}

func (s *DefaultBillingService) GetPlatformConfig(ctx context.Context) (*models.PlatformConfig, error) {
	return s.Platform.GetConfig(ctx)
}

func (s *DefaultBillingService) UpdatePlatformConfig(ctx context.Context, payload map[string]interface{}) error {
	if len(payload) == 0 {
		return fmt.Errorf("no config fields provided")
	}
	// _id is the document key and must not be overwritten by a merge.
	delete(payload, "_id")
	return s.Platform.MergeConfig(ctx, payload)
}
