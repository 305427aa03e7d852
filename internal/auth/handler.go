package auth

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/metrics"
)

// Handler exposes the login and logout endpoints.
type Handler struct {
	svc     *Service
	cookies CookieConfig
	logger  *slog.Logger
}

// NewHandler builds the login/logout handler.
func NewHandler(svc *Service, cookies CookieConfig, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, cookies: cookies, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login validates credentials, sets the session cookie and redirects to the
// profile page. No cookie is written on failure.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	session, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	metrics.AuthEvent("login", err)
	if err != nil {
		return err
	}

	c.Cookie(h.cookies.Session(session.Token))
	h.logger.Info("auth.login completed",
		slog.String("email", session.Claims.Email),
		slog.Time("expires_at", session.Token.ExpiresAt),
	)
	return c.Redirect("/profile", http.StatusSeeOther)
}

// Logout overwrites the session cookie with an expired empty value. Tokens
// are stateless so there is nothing to clear server side.
func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.cookies.Expired())
	metrics.AuthEvent("logout", nil)
	return c.Redirect("/", http.StatusSeeOther)
}
