package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/identity"
)

// RegisterIdentityRoutes wires registration and the gated profile view.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler, ids *identity.Service, gate fiber.Handler) {
	r.Post("/created", h.Register)
	r.Get("/profile", gate, profileHandler(ids))
}
