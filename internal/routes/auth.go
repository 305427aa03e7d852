package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/auth"
)

// RegisterAuthRoutes wires login and logout. rateLimiter may be nil.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	if rateLimiter != nil {
		r.Post("/loggedin", rateLimiter, h.Login)
	} else {
		r.Post("/loggedin", h.Login)
	}
	r.Post("/loggedout", h.Logout)
}
