package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/auth"
	"github.com/congo-pay/pocket_ledger/internal/metrics"
)

// TokenVerifier checks a raw session token and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (auth.SessionClaims, error)
}

// SessionAuth rejects requests without a valid session cookie. Verified
// claims are stored in the fiber locals and in the user context so that
// handlers read the identity from there and never from the request body.
func SessionAuth(verifier TokenVerifier, cookieName string, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Cookies(cookieName))
		if raw == "" {
			metrics.AuthEvent("session_missing", apperr.ErrUnauthenticated)
			return fiber.NewError(http.StatusUnauthorized, "You Don't Have Access")
		}

		claims, err := verifier.Verify(raw)
		if err != nil {
			metrics.AuthEvent("session", err)
			logger.Warn("session rejected",
				slog.String("reason", auth.Reason(err)),
				slog.String("path", c.Path()),
				slog.String("request_id", RequestIDFrom(c)),
			)
			return fiber.NewError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(auth.LocalsKey, claims)
		c.SetUserContext(auth.WithClaims(c.UserContext(), claims))
		return c.Next()
	}
}
