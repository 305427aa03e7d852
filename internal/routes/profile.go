package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/auth"
	"github.com/congo-pay/pocket_ledger/internal/identity"
)

type profileResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

// profileHandler shows the record of the user named by the session. A
// session for a user that no longer exists is treated as unauthenticated.
func profileHandler(ids *identity.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c.UserContext())
		if !ok {
			return apperr.ErrUnauthenticated
		}
		user, err := ids.Profile(c.UserContext(), claims.Email)
		if errors.Is(err, apperr.ErrUserNotFound) {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		if err != nil {
			return err
		}
		return c.Status(http.StatusOK).JSON(profileResponse{
			Email: user.Email,
			Name:  user.Name,
			Age:   user.Age,
		})
	}
}
