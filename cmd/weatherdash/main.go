package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/pmoraes-dev/weatherdash/internal/api/http"
	"github.com/pmoraes-dev/weatherdash/internal/config"
	"github.com/pmoraes-dev/weatherdash/internal/dashboard"
	"github.com/pmoraes-dev/weatherdash/internal/store"
	"github.com/pmoraes-dev/weatherdash/internal/view"
	"github.com/pmoraes-dev/weatherdash/internal/weather/openmeteo"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound Open-Meteo calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := openmeteo.NewGeocodingClient(httpClient)
	fetcher := openmeteo.NewForecastClient(httpClient)
	cache := store.NewSnapshotCache()

	// The server host has no device positioning; the browser reports its
	// own position through the coordinate search endpoint.
	ctrl := dashboard.New(geocoder, fetcher, dashboard.NoLocator{}, dashboard.LogRenderer{}, cache, dashboard.Options{
		DefaultCity:  cfg.DefaultCity,
		Hemisphere:   view.Hemisphere(cfg.Hemisphere),
		LocationWait: cfg.GeolocationWait,
		ChartWindow:  cfg.ChartWindowHours,
	})

	// Warm the cache with the default city so the first page load has data.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := ctrl.SearchByName(ctx, cfg.DefaultCity); err != nil {
			log.Printf("initial fetch for %q failed: %v", cfg.DefaultCity, err)
		}
	}()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weatherdash",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weatherdash",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, ctrl)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
