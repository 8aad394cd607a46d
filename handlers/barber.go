package handlers

import (
	"errors"
	"net/http"

	"barberbook/models"
	"barberbook/services/barber"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BarberHandler serves barber account and availability endpoints.
type BarberHandler struct {
	Service barber.BarberService
}

// NewBarberHandler constructs a BarberHandler.
func NewBarberHandler(svc barber.BarberService) *BarberHandler {
	return &BarberHandler{Service: svc}
}

// RegisterHandler handles POST /api/barbers/register. Only the identity
// fields are bound; plan, admin and availability state never come from the
// request.
func (h *BarberHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Phone       string `json:"phone"`
		Description string `json:"description"`
		Password    string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), models.Barber{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Password:    req.Password,
	})
	if err != nil {
		if errors.Is(err, barber.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register barber", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler handles POST /api/barbers/login.
func (h *BarberHandler) AuthenticateHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, barber.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		utils.GetLogger().Error("Failed to authenticate barber", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/barbers/me.
func (h *BarberHandler) GetProfileHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	prof, err := h.Service.GetByID(c.Request.Context(), barberID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// GetPublicProfileHandler handles GET /api/book/:barberId, the page behind
// the shareable booking link.
func (h *BarberHandler) GetPublicProfileHandler(c *gin.Context) {
	id := c.Param("barberId")
	prof, err := h.Service.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfileHandler handles PATCH /api/barbers/me.
func (h *BarberHandler) UpdateProfileHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prof, err := h.Service.UpdateProfile(c.Request.Context(), barberID, updates)
	if err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// DeleteAccountHandler handles DELETE /api/barbers/me.
func (h *BarberHandler) DeleteAccountHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	if err := h.Service.DeleteAccount(c.Request.Context(), barberID); err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete barber", zap.String("id", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// SetAvailabilityHandler handles PUT /api/barbers/me/availability.
func (h *BarberHandler) SetAvailabilityHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	var avail models.Availability
	if err := c.ShouldBindJSON(&avail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), barberID, avail); err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability saved"})
}

// GetAvailabilityHandler handles GET /api/barbers/me/availability.
func (h *BarberHandler) GetAvailabilityHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	avail, err := h.Service.GetAvailability(c.Request.Context(), barberID)
	if err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No availability configured"})
			return
		}
		utils.GetLogger().Error("Failed to fetch availability", zap.String("id", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability"})
		return
	}
	c.JSON(http.StatusOK, avail)
}
