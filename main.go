// File: glowspa/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowspa/config"
	"glowspa/cron"
	"glowspa/database"
	appointmentRepoPkg "glowspa/database/repository/appointment"
	catalogRepoPkg "glowspa/database/repository/catalog"
	userRepoPkg "glowspa/database/repository/user"
	"glowspa/handlers"
	"glowspa/middleware"
	"glowspa/routes"
	"glowspa/services/catalog"
	"glowspa/services/notification"
	"glowspa/services/payment"
	"glowspa/services/wizard"
	"glowspa/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catalogRepo,
		Cache:  utils.GetCatalogCacheClient(),
		TTL:    10 * time.Minute,
		Logger: logger,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	reminderScheduler := cron.NewReminderScheduler(logger)
	cron.InitReminderWorker(notificationService)

	sessionStore := wizard.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	gateway := payment.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		logger,
	)

	wizardService := &wizard.DefaultWizardService{
		Store:        sessionStore,
		Catalog:      catalogService,
		Appointments: appointmentRepo,
		Gateway:      gateway,
		Hooks: &cron.BookingHooks{
			Notifier:  notificationService,
			Reminders: reminderScheduler,
			Logger:    logger,
		},
		Currency: config.AppConfig.PaymentCurrency,
		Logger:   logger,
	}

	authHandler := handlers.NewAuthHandler(userRepo, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, appointmentRepo, logger)
	adminHandler := handlers.NewAdminHandler(catalogService, cloudinaryStorageService, logger)
	wizardHandler := handlers.NewBookingWizardHandler(wizardService, userRepo, logger)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, authHandler, catalogHandler, adminHandler, wizardHandler)

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
