package handlers

import (
	"errors"
	"net/http"

	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves service catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreateServiceHandler handles POST /api/barbers/me/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.BarberID = barberID

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListServicesHandler handles GET /api/barbers/me/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	h.listForBarber(c, barberID)
}

// ListPublicServicesHandler handles GET /api/book/:barberId/services, the
// catalog shown on the public booking page.
func (h *CatalogHandler) ListPublicServicesHandler(c *gin.Context) {
	h.listForBarber(c, c.Param("barberId"))
}

func (h *CatalogHandler) listForBarber(c *gin.Context, barberID string) {
	services, err := h.Service.ListByBarber(c.Request.Context(), barberID)
	if err != nil {
		utils.GetLogger().Error("Failed to list services",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// UpdateServiceHandler handles PATCH /api/barbers/me/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), barberID, id, updates)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/barbers/me/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), barberID, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
