// Package main is the entry point for the itinerary engine service.
//
//	@title						Itinerary Engine API
//	@version					1.0.0
//	@description				A travel itinerary generation service that matches catalog content to traveler preferences, plans day schedules, and prices the result.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/travel-platform/itinerary-engine/issues
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/travel-platform/itinerary-engine/docs"

	// Application layers
	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/cityguide"
	"github.com/travel-platform/itinerary-engine/internal/adapter/catalog/daytrip"
	"github.com/travel-platform/itinerary-engine/internal/adapter/export"
	enginehttp "github.com/travel-platform/itinerary-engine/internal/adapter/http"
	"github.com/travel-platform/itinerary-engine/internal/adapter/http/middleware"
	"github.com/travel-platform/itinerary-engine/internal/config"
	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/cache"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/logger"
	"github.com/travel-platform/itinerary-engine/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "itinerary-engine",
	})

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, logger.Global.Logger)

	// Setup routes and wire the engine
	resultCache := setupRoutes(e, cfg)
	defer resultCache.Close()

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupRoutes wires the engine components and registers the HTTP routes.
// It returns the result cache so main can close it on shutdown.
func setupRoutes(e *echo.Echo, cfg *config.Config) *cache.Cache[*domain.Itinerary] {
	// Catalog sources backed by JSON files in the catalog directory.
	// The service logger captures entries the normalizers have to skip.
	sources := []domain.CatalogSource{
		cityguide.NewAdapterWithLogger(filepath.Join(cfg.Engine.CatalogDir, "cityguide_catalog.json"), logger.Global),
		daytrip.NewAdapterWithLogger(filepath.Join(cfg.Engine.CatalogDir, "daytrip_catalog.json"), logger.Global),
	}

	matcher := usecase.NewMatcher(nil)
	planner := usecase.NewPlanner(&usecase.PlannerConfig{
		DayStart:      cfg.Engine.DayStart,
		DayEnd:        cfg.Engine.DayEnd,
		MaxActivities: cfg.Engine.MaxActivitiesPerDay,
		BufferMinutes: cfg.Engine.ActivityBufferMinutes,
	})
	pricer := usecase.NewPricingEngine(nil)

	resultCache := cache.New[*domain.Itinerary](cache.Config{
		TTL:           cfg.Cache.TTL,
		MaxEntries:    cfg.Cache.MaxEntries,
		SweepInterval: cfg.Cache.SweepInterval,
	})

	itineraryUseCase := usecase.NewItineraryUseCase(
		sources,
		matcher,
		planner,
		pricer,
		resultCache,
		cache.PreferenceKey,
		&usecase.Config{
			GlobalTimeout: cfg.Timeouts.GlobalGenerate,
			SourceTimeout: cfg.Timeouts.PerSource,
			BatchSize:     cfg.Engine.BatchSize,
			MinScore:      cfg.Engine.MinScore,
		},
	)

	handler := enginehttp.NewItineraryHandler(
		itineraryUseCase,
		matcher,
		pricer,
		export.NewPDFRenderer(),
		resultCache.Stats,
	)

	enginehttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return resultCache
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
