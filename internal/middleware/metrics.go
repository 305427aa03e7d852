package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/httperr"
	"github.com/congo-pay/pocket_ledger/internal/metrics"
)

// Metrics records request counts and latencies labelled by route pattern.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status, _, _ = httperr.Status(err)
		}
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		metrics.ObserveHTTP(c.Method(), route, status, time.Since(start))
		return err
	}
}
