package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formalgeo/problembank/internal/api"
	"github.com/formalgeo/problembank/internal/config"
	"github.com/formalgeo/problembank/internal/logger"
	"github.com/formalgeo/problembank/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup routes; creates the problems directory, fatal if that fails
	if err := api.SetupRoutes(app, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Problem bank listening")
		log.Info().Str("url", "http://localhost:"+cfg.Port+"/images/").Msg("Serving images")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
