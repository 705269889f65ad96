package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itskavin/Forex-Market-Hours/config"
	"github.com/itskavin/Forex-Market-Hours/handlers"
	"github.com/itskavin/Forex-Market-Hours/middleware"
	"github.com/itskavin/Forex-Market-Hours/routes"
	"github.com/itskavin/Forex-Market-Hours/services/market"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
	"github.com/itskavin/Forex-Market-Hours/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The session catalog is static; a bad zone or wall clock is a
	// configuration error, so refuse to boot rather than fail per tick.
	catalog := market.DefaultCatalog()
	if err := market.ValidateCatalog(catalog); err != nil {
		logger.Sugar().Fatalf("main: invalid session catalog: %v", err)
	}
	if err := market.ValidateZones(nil, config.AppConfig.DefaultTimeZone); err != nil {
		logger.Sugar().Fatalf("main: invalid default time zone: %v", err)
	}

	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetPrefsClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	marketService := market.NewDefaultMarketService(catalog)
	prefService := preferences.NewRedisPreferenceService(
		utils.GetPrefsClient(),
		config.AppConfig.DefaultTimeZone,
		time.Duration(config.AppConfig.PrefsTTLHours)*time.Hour,
		logger,
	)

	tick := time.Duration(config.AppConfig.TickIntervalMS) * time.Millisecond

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Market:      handlers.NewMarketHandler(marketService, prefService),
		Preferences: handlers.NewPreferenceHandler(prefService),
		Stream:      handlers.NewStreamHandler(marketService, prefService, tick),
		Dashboard:   handlers.NewDashboardHandler(marketService, prefService, tick),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
