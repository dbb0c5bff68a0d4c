package api

import (
	"github.com/formalgeo/problembank/internal/config"
	"github.com/formalgeo/problembank/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes configures middleware, the static image mount and the problem
// endpoints on app.
func SetupRoutes(app *fiber.App, cfg *config.Config) error {
	handlers, err := NewHandlers(cfg)
	if err != nil {
		return err
	}

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New()) // defaults allow any origin
	app.Use(middleware.RequestLogger())

	// Read-only image tree. The directory is not checked at startup; a
	// missing directory simply 404s every image request.
	app.Static("/images", cfg.ImagesDir)

	// Health check endpoint
	app.Get("/health", handlers.HealthCheck)

	// Problem endpoints
	problems := app.Group("/problems")
	{
		problems.Get("/:id", handlers.GetProblem)
		problems.Post("/:id", handlers.SaveProblem)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})

	return nil
}
