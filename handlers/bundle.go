package handlers

import (
	barberRepoPkg "barberbook/database/repository/barber"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	BarberRepo barberRepoPkg.BarberRepository

	// Public booking endpoints.
	GetPublicProfileHandler gin.HandlerFunc
	ListPublicServices      gin.HandlerFunc
	ListSlotsHandler        gin.HandlerFunc
	BookHandler             gin.HandlerFunc

	// Barber account endpoints.
	RegisterBarberHandler     gin.HandlerFunc
	AuthenticateBarberHandler gin.HandlerFunc
	GetBarberHandler          gin.HandlerFunc
	UpdateBarberHandler       gin.HandlerFunc
	DeleteBarberHandler       gin.HandlerFunc
	SetAvailabilityHandler    gin.HandlerFunc
	GetAvailabilityHandler    gin.HandlerFunc

	// Agenda endpoints.
	ListBookingsHandler  gin.HandlerFunc
	CancelBookingHandler gin.HandlerFunc

	// Catalog endpoints.
	CreateServiceHandler gin.HandlerFunc
	ListServicesHandler  gin.HandlerFunc
	UpdateServiceHandler gin.HandlerFunc
	DeleteServiceHandler gin.HandlerFunc

	// Inventory endpoints.
	AddProductHandler    gin.HandlerFunc
	ListProductsHandler  gin.HandlerFunc
	ListLowStockHandler  gin.HandlerFunc
	UpdateProductHandler gin.HandlerFunc
	RemoveProductHandler gin.HandlerFunc

	// Ledger endpoints.
	ListLedgerHandler    gin.HandlerFunc
	MarkLedgerPaid       gin.HandlerFunc
	LedgerSummaryHandler gin.HandlerFunc

	// Billing endpoints.
	StartTrialHandler      gin.HandlerFunc
	CheckoutSessionHandler gin.HandlerFunc
	StripeWebhookHandler   gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
