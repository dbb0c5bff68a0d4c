package middleware

import (
	"net/http"

	"github.com/formalgeo/problembank/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler shapes errors that escape a handler into a consistent JSON
// response. Anything that is not a *fiber.Error becomes a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	logger.Get().Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", code).
		Msg("HTTP error")

	return c.Status(code).JSON(fiber.Map{
		"error": http.StatusText(code),
	})
}
