package identity

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/metrics"
)

// Handler exposes identity endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs an identity HTTP handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

type registerRequest struct {
	Name     string      `json:"name" form:"name"`
	Email    string      `json:"email" form:"email"`
	Password string      `json:"password" form:"password"`
	Age      json.Number `json:"age" form:"age"`
}

// Register handles signup and sends the client to the login page. There is
// no automatic login.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	age, err := parseAge(req.Age)
	if err != nil {
		metrics.AuthEvent("register", err)
		return err
	}

	user, err := h.service.Register(c.UserContext(), Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      age,
	})
	metrics.AuthEvent("register", err)
	if err != nil {
		return err
	}

	h.logger.Info("identity.register completed", slog.String("email", user.Email))
	return c.Redirect("/login", http.StatusSeeOther)
}

// A blank age parses to zero and is rejected by the service.
func parseAge(raw json.Number) (int, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return 0, nil
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.Validation("age", "must be a positive integer")
	}
	return age, nil
}
