package auth

import (
	"context"
	"fmt"

	"github.com/congo-pay/pocket_ledger/internal/identity"
)

// Authenticator checks credentials against the credential store.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (identity.User, error)
}

// Service runs the login pipeline: authenticate, then issue a token.
type Service struct {
	users Authenticator
	codec *Codec
}

// NewService builds the login service.
func NewService(users Authenticator, codec *Codec) *Service {
	return &Service{users: users, codec: codec}
}

// Session is the outcome of a successful login.
type Session struct {
	Claims SessionClaims
	Token  Token
}

// Login validates credentials and issues a session token carrying the
// user's email. Errors from the credential check pass through unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return Session{}, err
	}

	claims := SessionClaims{Email: user.Email, Name: user.Name}
	tok, err := s.codec.Issue(claims)
	if err != nil {
		return Session{}, fmt.Errorf("issue session: %w", err)
	}
	claims.ExpiresAt = tok.ExpiresAt

	return Session{Claims: claims, Token: tok}, nil
}
