package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/ledger"
)

// RegisterLedgerRoutes wires the transaction endpoints. Adding always
// requires a session; listing and deleting only when the service is
// owner scoped. idempotency may be nil.
func RegisterLedgerRoutes(r fiber.Router, h *ledger.Handler, scoped bool, gate, idempotency fiber.Handler) {
	add := []fiber.Handler{gate}
	if idempotency != nil {
		add = append(add, idempotency)
	}
	r.Post("/TransactionAdded", append(add, h.Add)...)

	if scoped {
		r.Get("/transactions", gate, h.List)
		r.Post("/delete/:id", gate, h.Delete)
		return
	}
	r.Get("/transactions", h.List)
	r.Post("/delete/:id", h.Delete)
}
