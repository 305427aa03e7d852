// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the work factor used when none is configured.
const DefaultCost = 10

var (
	// ErrMalformedHash indicates a stored hash bcrypt cannot parse. It is a
	// data-integrity failure, not a wrong password.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrTooLong is returned for passwords bcrypt would silently truncate.
	ErrTooLong = errors.New("password exceeds 72 bytes")
)

// Hasher derives salted one-way hashes. It holds no mutable state and is
// safe for concurrent use.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the provided work factor. Costs outside
// bcrypt's range fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost reports the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a bcrypt hash with a random salt.
func (h *Hasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrTooLong
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Verify reports whether password matches hash. A mismatch is (false, nil);
// only an unparseable hash yields an error.
func (h *Hasher) Verify(password string, hash []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
