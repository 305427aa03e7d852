package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieConfig controls how the session token travels to the browser.
type CookieConfig struct {
	Name   string
	Secure bool
}

// Session builds the cookie carrying tok. Its expiry is the token's own
// expiry so the two lifetimes cannot drift.
func (cc CookieConfig) Session(tok Token) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     cc.Name,
		Value:    tok.Value,
		Path:     "/",
		Expires:  tok.ExpiresAt,
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.sameSite(),
	}
}

// Expired builds an empty cookie that overwrites and expires the session.
func (cc CookieConfig) Expired() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     cc.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0).UTC(),
		HTTPOnly: true,
		Secure:   cc.Secure,
		SameSite: cc.sameSite(),
	}
}

// Browsers drop SameSite=None cookies that are not Secure.
func (cc CookieConfig) sameSite() string {
	if cc.Secure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
