package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		message  string
		internal bool
	}{
		{"validation", apperr.Validation("amount", "is required"), http.StatusBadRequest, "amount is required", false},
		{"wrapped validation", fmt.Errorf("add: %w", apperr.Validation("description", "is required")), http.StatusBadRequest, "description is required", false},
		{"duplicate", apperr.ErrDuplicateEmail, http.StatusConflict, "Email Already Exists", false},
		{"user not found", apperr.ErrUserNotFound, http.StatusNotFound, "User Does Not Exist", false},
		{"wrong password", apperr.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect Password", false},
		{"unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized, "You Don't Have Access", false},
		{"not found", apperr.ErrNotFound, http.StatusNotFound, "Transaction Not Found", false},
		{"store", apperr.Store("find", errors.New("dial tcp: refused")), http.StatusInternalServerError, Generic, true},
		{"fiber", fiber.NewError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "slow down", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, message, internal := Status(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.message, message)
			assert.Equal(t, tc.internal, internal)
		})
	}
}

func TestStatusNeverLeaksStoreDetails(t *testing.T) {
	_, message, _ := Status(apperr.Store("insert", errors.New("password=hunter2 host=db")))
	assert.NotContains(t, message, "hunter2")
}
