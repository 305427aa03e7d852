package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/httperr"
	"github.com/congo-pay/pocket_ledger/internal/middleware"
)

// errorHandler renders every handler error as a plain-text body. Internal
// failures are logged and answered with a generic message.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message, internal := httperr.Status(err)
		if internal {
			logger.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("request_id", middleware.RequestIDFrom(c)),
				slog.Any("error", err),
			)
			message = httperr.Generic
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}
}
