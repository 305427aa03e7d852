package ledger

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/auth"
)

// Handler exposes ledger endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a ledger handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// addRequest has no owner field; any email sent by the client is ignored.
type addRequest struct {
	Amount      json.Number `json:"amount" form:"amount"`
	Description string      `json:"description" form:"description"`
	Date        string      `json:"date" form:"date"`
}

// Add records a transaction for the session established by the auth gate.
func (h *Handler) Add(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c.UserContext())
	if !ok {
		return apperr.ErrUnauthenticated
	}

	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	if _, err := h.service.AddTransaction(c.UserContext(), claims, NewTransaction{
		Amount:      req.Amount.String(),
		Description: req.Description,
		Date:        date,
	}); err != nil {
		return err
	}
	return c.Redirect("/profile", http.StatusSeeOther)
}

// List returns the visible transactions and their total.
func (h *Handler) List(c *fiber.Ctx) error {
	claims, _ := auth.ClaimsFromContext(c.UserContext())
	summary, err := h.service.ListTransactions(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// Delete removes the transaction named in the path and returns to the list.
func (h *Handler) Delete(c *fiber.Ctx) error {
	claims, _ := auth.ClaimsFromContext(c.UserContext())
	if _, err := h.service.DeleteTransaction(c.UserContext(), claims, c.Params("id")); err != nil {
		return err
	}
	return c.Redirect("/transactions", http.StatusSeeOther)
}

// parseDate accepts RFC 3339 timestamps or plain dates; blank means now.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("date", "must be YYYY-MM-DD or RFC 3339")
}
