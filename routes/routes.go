package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the unauthenticated booking surface served
// behind each barber's shareable link.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/book")
	{
		api.GET("/:barberId", hb.GetPublicProfileHandler)
		api.GET("/:barberId/services", hb.ListPublicServices)
		api.GET("/:barberId/slots", hb.ListSlotsHandler)
		api.POST("/:barberId", hb.BookHandler)
	}
}

// RegisterBarberRoutes registers account, availability, agenda, catalog,
// inventory, ledger and billing endpoints for the signed-in barber.
func RegisterBarberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/barbers")
	{
		api.POST("/register", hb.RegisterBarberHandler)
		api.POST("/login", hb.AuthenticateBarberHandler)

		// Everything below operates on the authenticated barber's own data.
		me := api.Group("/me")
		me.Use(middleware.JWTAuthMiddleware())

		me.GET("", hb.GetBarberHandler)
		me.PATCH("", hb.UpdateBarberHandler)
		me.DELETE("", hb.DeleteBarberHandler)
		me.PUT("/availability", hb.SetAvailabilityHandler)
		me.GET("/availability", hb.GetAvailabilityHandler)

		me.GET("/bookings", hb.ListBookingsHandler)
		me.DELETE("/bookings/:id", hb.CancelBookingHandler)

		me.POST("/services", hb.CreateServiceHandler)
		me.GET("/services", hb.ListServicesHandler)
		me.PATCH("/services/:id", hb.UpdateServiceHandler)
		me.DELETE("/services/:id", hb.DeleteServiceHandler)

		me.POST("/inventory", hb.AddProductHandler)
		me.GET("/inventory", hb.ListProductsHandler)
		me.GET("/inventory/low-stock", hb.ListLowStockHandler)
		me.PATCH("/inventory/:id", hb.UpdateProductHandler)
		me.DELETE("/inventory/:id", hb.RemoveProductHandler)

		me.GET("/ledger", hb.ListLedgerHandler)
		me.GET("/ledger/summary", hb.LedgerSummaryHandler)
		me.PUT("/ledger/:id/paid", hb.MarkLedgerPaid)

		me.POST("/billing/trial", hb.StartTrialHandler)
		me.POST("/billing/checkout", hb.CheckoutSessionHandler)
	}
}

// RegisterBillingRoutes registers payment provider callbacks. The webhook is
// authenticated by signature, not by JWT.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/billing/webhook", hb.StripeWebhookHandler)
}

// RegisterAdminRoutes sets up endpoints for platform administration.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.BarberRepo))
		adminGroup.POST("/barbers/:id/promote", hb.AdminHandler.PromoteBarberHandler)
		adminGroup.POST("/barbers/:id/demote", hb.AdminHandler.DemoteBarberHandler)
		adminGroup.POST("/trials/expire", hb.AdminHandler.ExpireTrialsHandler)
		adminGroup.GET("/config", hb.AdminHandler.GetPlatformConfigHandler)
		adminGroup.PATCH("/config", hb.AdminHandler.UpdatePlatformConfigHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterBarberRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
