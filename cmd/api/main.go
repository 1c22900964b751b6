package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // IANA zones for minimal images

	"astro-chart-api/config"
	_ "astro-chart-api/docs" // Swagger docs
	"astro-chart-api/internal/app"
	"astro-chart-api/internal/httpserver"
	"astro-chart-api/pkg/log"
)

// @title       Astro Chart API
// @description Natal chart placements with an LLM written reading.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Astro Chart API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Geocoder: %s", cfg.Geocoder.BaseURL)

	// 3. Clients and use cases
	a, err := app.Wire(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to wire application: ", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		ChartUseCase:   a.Chart,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
