package handlers

import (
	"net/http"
	"time"

	barberRepoPkg "barberbook/database/repository/barber"
	"barberbook/services/billing"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves platform administration endpoints. Every route it
// backs sits behind the admin middleware.
type AdminHandler struct {
	Billing billing.BillingService
	Barbers barberRepoPkg.BarberRepository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(billingSvc billing.BillingService, barbers barberRepoPkg.BarberRepository) *AdminHandler {
	return &AdminHandler{Billing: billingSvc, Barbers: barbers}
}

// PromoteBarberHandler handles POST /api/admin/barbers/:id/promote.
func (h *AdminHandler) PromoteBarberHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Billing.Promote(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Admin promote failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote barber"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barber promoted to premium"})
}

// DemoteBarberHandler handles POST /api/admin/barbers/:id/demote.
func (h *AdminHandler) DemoteBarberHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Billing.Demote(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Admin demote failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to demote barber"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Barber demoted to free"})
}

// ExpireTrialsHandler handles POST /api/admin/trials/expire. The daily sweep
// runs the same operation on a schedule; this endpoint triggers it on demand.
func (h *AdminHandler) ExpireTrialsHandler(c *gin.Context) {
	count, err := h.Barbers.ExpireTrials(c.Request.Context(), time.Now().UTC())
	if err != nil {
		utils.GetLogger().Error("Admin trial expiry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to expire trials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": count})
}

// GetPlatformConfigHandler handles GET /api/admin/config.
func (h *AdminHandler) GetPlatformConfigHandler(c *gin.Context) {
	cfg, err := h.Billing.GetPlatformConfig(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch platform config", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch platform config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdatePlatformConfigHandler handles PATCH /api/admin/config.
func (h *AdminHandler) UpdatePlatformConfigHandler(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Billing.UpdatePlatformConfig(c.Request.Context(), payload); err != nil {
		utils.GetLogger().Error("Failed to update platform config", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Platform config updated"})
}
