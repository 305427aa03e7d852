package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

var (
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = fmt.Errorf("%w: malformed token", apperr.ErrUnauthenticated)
	// ErrTokenInvalid indicates a bad signature, algorithm or claim set.
	ErrTokenInvalid = fmt.Errorf("%w: invalid token", apperr.ErrUnauthenticated)
	// ErrTokenExpired indicates a correctly signed token past its expiry.
	ErrTokenExpired = fmt.Errorf("%w: expired token", apperr.ErrUnauthenticated)
)

// SessionClaims is the identity carried inside a session token.
type SessionClaims struct {
	Email     string
	Name      string
	ExpiresAt time.Time
}

// Token is a signed session token and the instant it stops being valid.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 session tokens. It is immutable after
// construction and safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a codec signing with secret and issuing tokens valid for ttl.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock returns a copy of the codec that reads time from now.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

// TTL reports the lifetime of issued tokens.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs claims into a token expiring one TTL from now. ExpiresAt is
// truncated to the precision stored in the token so cookies can reuse it.
func (c *Codec) Issue(claims SessionClaims) (Token, error) {
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return Token{}, errors.New("session claims require an email")
	}

	now := c.now()
	expiresAt := now.Add(c.ttl).Truncate(jwt.TimePrecision)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign session token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks the signature and expiry of raw and returns its claims.
func (c *Codec) Verify(raw string) (SessionClaims, error) {
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return SessionClaims{}, mapJWTError(err)
	}
	if parsed.Email == "" {
		return SessionClaims{}, ErrTokenInvalid
	}

	claims := SessionClaims{Email: parsed.Email, Name: parsed.Name}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenInvalid
	}
}

// Reason names the verification failure for logs.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenInvalid):
		return "invalid"
	default:
		return "unknown"
	}
}
