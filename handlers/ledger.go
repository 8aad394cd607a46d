package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/ledger"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LedgerHandler serves the barber's receivables endpoints.
type LedgerHandler struct {
	Service ledger.LedgerService
}

// NewLedgerHandler constructs a LedgerHandler.
func NewLedgerHandler(svc ledger.LedgerService) *LedgerHandler {
	return &LedgerHandler{Service: svc}
}

// ListEntriesHandler handles GET /api/barbers/me/ledger.
func (h *LedgerHandler) ListEntriesHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	entries, err := h.Service.ListEntries(c.Request.Context(), barberID)
	if err != nil {
		utils.GetLogger().Error("Failed to list ledger entries",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// MarkPaidHandler handles PUT /api/barbers/me/ledger/:id/paid.
func (h *LedgerHandler) MarkPaidHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	id := c.Param("id")

	if err := h.Service.MarkPaid(c.Request.Context(), barberID, id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pending ledger entry not found"})
			return
		}
		utils.GetLogger().Error("Failed to mark ledger entry paid",
			zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark entry paid"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry marked paid"})
}

// SummaryHandler handles GET /api/barbers/me/ledger/summary.
func (h *LedgerHandler) SummaryHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	summary, err := h.Service.Summary(c.Request.Context(), barberID)
	if err != nil {
		utils.GetLogger().Error("Failed to summarize ledger",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize ledger"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
