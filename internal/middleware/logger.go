package middleware

import (
	"time"

	"github.com/formalgeo/problembank/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs one structured line per handled request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		event := logger.Get().Info()
		if err != nil {
			event = logger.Get().Error().Err(err)
		}

		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Str("ip", c.IP()).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
