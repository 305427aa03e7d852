package identity

import (
	"strings"
	"time"
)

// User represents a registered account owner. Email is the identity and is
// always stored lowercased.
type User struct {
	Email        string
	Name         string
	Age          int
	PasswordHash []byte
	CreatedAt    time.Time
}

// Registration is the raw signup input.
type Registration struct {
	Name     string
	Email    string
	Password string
	Age      int
}

// NormalizeEmail trims and lowercases an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
