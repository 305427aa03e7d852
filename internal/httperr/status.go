// Package httperr translates service errors into HTTP status codes and the
// messages shown to clients.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

// Generic is the body sent for failures whose details must not leak.
const Generic = "Something Went Wrong"

// Status returns the status code and client message for err. Internal
// reports whether the failure is a server-side fault worth logging.
func Status(err error) (code int, message string, internal bool) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message, fiberErr.Code >= http.StatusInternalServerError
	}

	var vErr *apperr.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error(), false
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, "Invalid input", false
	case errors.Is(err, apperr.ErrDuplicateEmail):
		return http.StatusConflict, "Email Already Exists", false
	case errors.Is(err, apperr.ErrUserNotFound):
		return http.StatusNotFound, "User Does Not Exist", false
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect Password", false
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, "You Don't Have Access", false
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, "Transaction Not Found", false
	default:
		return http.StatusInternalServerError, Generic, true
	}
}
