package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	barberRepoPkg "barberbook/database/repository/barber"
	bookingRepoPkg "barberbook/database/repository/booking"
	inventoryRepoPkg "barberbook/database/repository/inventory"
	ledgerRepoPkg "barberbook/database/repository/ledger"
	platformRepoPkg "barberbook/database/repository/platform"
	serviceRepoPkg "barberbook/database/repository/service"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/barber"
	"barberbook/services/billing"
	"barberbook/services/catalog"
	"barberbook/services/inventory"
	"barberbook/services/ledger"
	"barberbook/services/scheduling"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	barberRepo := barberRepoPkg.NewMongoBarberRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	inventoryRepo := inventoryRepoPkg.NewMongoInventoryRepo()
	ledgerRepo := ledgerRepoPkg.NewMongoLedgerRepo()
	platformRepo := platformRepoPkg.NewMongoPlatformRepo()

	// services.
	barberService := &barber.DefaultBarberService{Repo: barberRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	inventoryService := &inventory.DefaultInventoryService{Repo: inventoryRepo}
	ledgerService := &ledger.DefaultLedgerService{Repo: ledgerRepo}
	billingService := &billing.DefaultBillingService{
		Barbers:  barberRepo,
		Platform: platformRepo,
	}
	// The engine reads availability through the barber service so public
	// slot listings hit the redis cache, not the store.
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Availability: barberService,
		Services:     serviceRepo,
		Bookings:     bookingRepo,
		Ledger:       ledgerRepo,
	}

	// handlers.
	barberHandler := handlers.NewBarberHandler(barberService)
	bookingHandler := handlers.NewBookingHandler(schedulingEngine, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	billingHandler := handlers.NewBillingHandler(billingService)
	adminHandler := handlers.NewAdminHandler(billingService, barberRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		BarberRepo: barberRepo,

		// Public booking endpoints.
		GetPublicProfileHandler: barberHandler.GetPublicProfileHandler,
		ListPublicServices:      catalogHandler.ListPublicServicesHandler,
		ListSlotsHandler:        bookingHandler.ListSlotsHandler,
		BookHandler:             bookingHandler.BookHandler,

		// Barber account endpoints.
		RegisterBarberHandler:     barberHandler.RegisterHandler,
		AuthenticateBarberHandler: barberHandler.AuthenticateHandler,
		GetBarberHandler:          barberHandler.GetProfileHandler,
		UpdateBarberHandler:       barberHandler.UpdateProfileHandler,
		DeleteBarberHandler:       barberHandler.DeleteAccountHandler,
		SetAvailabilityHandler:    barberHandler.SetAvailabilityHandler,
		GetAvailabilityHandler:    barberHandler.GetAvailabilityHandler,

		// Agenda endpoints.
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		CancelBookingHandler: bookingHandler.CancelBookingHandler,

		// Catalog endpoints.
		CreateServiceHandler: catalogHandler.CreateServiceHandler,
		ListServicesHandler:  catalogHandler.ListServicesHandler,
		UpdateServiceHandler: catalogHandler.UpdateServiceHandler,
		DeleteServiceHandler: catalogHandler.DeleteServiceHandler,

		// Inventory endpoints.
		AddProductHandler:    inventoryHandler.AddProductHandler,
		ListProductsHandler:  inventoryHandler.ListProductsHandler,
		ListLowStockHandler:  inventoryHandler.ListLowStockHandler,
		UpdateProductHandler: inventoryHandler.UpdateProductHandler,
		RemoveProductHandler: inventoryHandler.RemoveProductHandler,

		// Ledger endpoints.
		ListLedgerHandler:    ledgerHandler.ListEntriesHandler,
		MarkLedgerPaid:       ledgerHandler.MarkPaidHandler,
		LedgerSummaryHandler: ledgerHandler.SummaryHandler,

		// Billing endpoints.
		StartTrialHandler:      billingHandler.StartTrialHandler,
		CheckoutSessionHandler: billingHandler.CheckoutSessionHandler,
		StripeWebhookHandler:   billingHandler.StripeWebhookHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the daily trial sweep worker.
	cron.InitTrialSweeper(barberRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
