package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"barberbook/config"
	"barberbook/services/billing"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// Webhook bodies are small; anything past this is not a Stripe event.
const maxWebhookBody = 1 << 20

// BillingHandler serves plan and payment endpoints.
type BillingHandler struct {
	Service billing.BillingService
}

// NewBillingHandler constructs a BillingHandler.
func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Service: svc}
}

// StartTrialHandler handles POST /api/barbers/me/billing/trial.
func (h *BillingHandler) StartTrialHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	barber, err := h.Service.StartTrial(c.Request.Context(), barberID)
	if err != nil {
		if errors.Is(err, billing.ErrTrialNotAvailable) {
			c.JSON(http.StatusConflict, gin.H{"error": "Trial not available for this account"})
			return
		}
		utils.GetLogger().Error("Failed to start trial",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start trial"})
		return
	}
	c.JSON(http.StatusOK, barber)
}

// CheckoutSessionHandler handles POST /api/barbers/me/billing/checkout.
func (h *BillingHandler) CheckoutSessionHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), barberID)
	if err != nil {
		if errors.Is(err, billing.ErrCheckoutDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online checkout is not enabled"})
			return
		}
		utils.GetLogger().Error("Failed to create checkout session",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// StripeWebhookHandler handles POST /api/billing/webhook. There is no JWT on
// this route; the Stripe signature is the authentication.
func (h *BillingHandler) StripeWebhookHandler(c *gin.Context) {
	logger := utils.GetLogger()
	secret := config.AppConfig.StripeWebhookSecret
	if secret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Webhook not configured"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), secret)
	if err != nil {
		logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			logger.Error("Invalid checkout session payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
			return
		}
		if err := h.Service.HandleCheckoutCompleted(c.Request.Context(), &session); err != nil {
			logger.Error("Failed to apply checkout completion",
				zap.String("sessionID", session.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply event"})
			return
		}
	default:
		logger.Debug("Ignoring stripe event", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
