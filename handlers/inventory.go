package handlers

import (
	"errors"
	"net/http"

	"barberbook/models"
	"barberbook/services/inventory"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler serves the barber's stock management endpoints.
type InventoryHandler struct {
	Service inventory.InventoryService
}

// NewInventoryHandler constructs an InventoryHandler.
func NewInventoryHandler(svc inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: svc}
}

// AddProductHandler handles POST /api/barbers/me/inventory.
func (h *InventoryHandler) AddProductHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.BarberID = barberID

	created, err := h.Service.AddProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProductsHandler handles GET /api/barbers/me/inventory.
func (h *InventoryHandler) ListProductsHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	products, err := h.Service.ListProducts(c.Request.Context(), barberID)
	if err != nil {
		utils.GetLogger().Error("Failed to list products",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ListLowStockHandler handles GET /api/barbers/me/inventory/low-stock.
func (h *InventoryHandler) ListLowStockHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	products, err := h.Service.ListLowStock(c.Request.Context(), barberID)
	if err != nil {
		utils.GetLogger().Error("Failed to list low-stock products",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list low-stock products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "threshold": inventory.LowStockThreshold})
}

// UpdateProductHandler handles PATCH /api/barbers/me/inventory/:id.
func (h *InventoryHandler) UpdateProductHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateProduct(c.Request.Context(), barberID, id, updates); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// RemoveProductHandler handles DELETE /api/barbers/me/inventory/:id.
func (h *InventoryHandler) RemoveProductHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	id := c.Param("id")

	if err := h.Service.RemoveProduct(c.Request.Context(), barberID, id); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		utils.GetLogger().Error("Failed to remove product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
