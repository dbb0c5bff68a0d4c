package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/formalgeo/problembank/internal/config"
	"github.com/formalgeo/problembank/internal/logger"
	"github.com/formalgeo/problembank/internal/store"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	config *config.Config
	store  *store.Store
}

func NewHandlers(cfg *config.Config) (*Handlers, error) {
	st, err := store.NewStore(cfg.ProblemsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize problem store: %w", err)
	}

	return &Handlers{
		config: cfg,
		store:  st,
	}, nil
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// GetProblem handles GET /problems/:id. A missing record is not an error:
// the client receives the default-shell document instead.
func (h *Handlers) GetProblem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Problem ID must be an integer",
		})
	}

	doc, err := h.store.Get(c.Context(), id)
	if err != nil {
		// Unreadable or corrupt file; let the error handler shape the 500.
		logger.Get().Error().Err(err).Int("id", id).Msg("Error reading problem")
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(doc)
}

// SaveProblem handles POST /problems/:id. The body is stored verbatim as the
// new document for the ID, fully replacing any prior content.
func (h *Handlers) SaveProblem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Problem ID must be an integer",
		})
	}

	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Request body must be valid JSON",
		})
	}

	if err := h.store.Put(c.Context(), id, body); err != nil {
		logger.Get().Error().Err(err).Int("id", id).Msg("Error saving problem")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save problem",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Problem saved successfully",
	})
}
