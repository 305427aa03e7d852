package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/auth"
	"github.com/congo-pay/pocket_ledger/internal/httperr"
)

// Audit emits structured logs for each request/response lifecycle event.
// Passwords and tokens are never logged; the session email is when present.
func Audit(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		internal := false
		if err != nil {
			status, _, internal = httperr.Status(err)
		}
		requestID := RequestIDFrom(c)

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		if claims, ok := auth.ClaimsFromContext(c.UserContext()); ok {
			attrs = append(attrs, slog.String("email", claims.Email))
		}

		switch {
		case err != nil && internal:
			attrs = append(attrs, slog.Any("error", err))
			logger.Error("request completed", attrs...)
		case err != nil:
			attrs = append(attrs, slog.String("error", err.Error()))
			logger.Warn("request completed", attrs...)
		default:
			logger.Info("request completed", attrs...)
		}
		return err
	}
}
