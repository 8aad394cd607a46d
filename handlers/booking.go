package handlers

import (
	"net/http"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// BookingHandler serves the public slot listing and booking endpoints plus
// the barber's own agenda.
type BookingHandler struct {
	Engine scheduling.SchedulingEngine
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine scheduling.SchedulingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// ListSlotsHandler handles GET /api/book/:barberId/slots?date=2006-01-02&serviceId=...
func (h *BookingHandler) ListSlotsHandler(c *gin.Context) {
	barberID := c.Param("barberId")
	serviceID := c.Query("serviceId")
	if serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing serviceId query parameter"})
		return
	}

	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.Engine.ListAvailableSlots(c.Request.Context(), barberID, date, serviceID)
	if err != nil {
		h.Logger.Error("ListSlots: failed to list slots",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available slots"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// BookHandler handles POST /api/book/:barberId.
func (h *BookingHandler) BookHandler(c *gin.Context) {
	barberID := c.Param("barberId")
	var req struct {
		ServiceID   string    `json:"serviceId" binding:"required"`
		StartTime   time.Time `json:"startTime" binding:"required"`
		ClientName  string    `json:"clientName"`
		ClientPhone string    `json:"clientPhone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	client := models.ClientInfo{Name: req.ClientName, Phone: req.ClientPhone}

	booking, err := h.Engine.Book(c.Request.Context(), barberID, req.ServiceID, req.StartTime, client)
	if err != nil {
		switch {
		case scheduling.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot unavailable"})
		case scheduling.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case scheduling.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Book: failed to create booking",
				zap.String("barberID", barberID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler handles GET /api/barbers/me/bookings?from=...&to=...
// Defaults to yesterday through the coming week when no range is given.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	barberID := c.GetString("barberID")

	now := time.Now()
	from, to := now.AddDate(0, 0, -1), now.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		// The to date is inclusive on the API.
		to = parsed.AddDate(0, 0, 1)
	}

	bookings, err := h.Engine.ListBookings(c.Request.Context(), barberID, from, to)
	if err != nil {
		if scheduling.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("ListBookings: failed to list bookings",
			zap.String("barberID", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler handles DELETE /api/barbers/me/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	barberID := c.GetString("barberID")
	bookingID := c.Param("id")

	if err := h.Engine.CancelBooking(c.Request.Context(), barberID, bookingID); err != nil {
		if scheduling.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.Logger.Error("CancelBooking: failed to cancel booking",
			zap.String("bookingID", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
