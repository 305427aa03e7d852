package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/password"
)

// PasswordHasher hashes and verifies secrets.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Verify(password string, hash []byte) (bool, error)
}

// Service manages registration and credential checks.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher, now: time.Now}
}

// Register validates the input, rejects an already used email and stores
// the user with a hashed password. It does not log the user in.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = NormalizeEmail(reg.Email)

	switch {
	case reg.Name == "":
		return User{}, apperr.Validation("name", "is required")
	case reg.Email == "":
		return User{}, apperr.Validation("email", "is required")
	case strings.TrimSpace(reg.Password) == "":
		return User{}, apperr.Validation("password", "is required")
	case reg.Age <= 0:
		return User{}, apperr.Validation("age", "must be a positive integer")
	}

	if _, err := s.repo.FindByEmail(ctx, reg.Email); err == nil {
		return User{}, apperr.ErrDuplicateEmail
	} else if !errors.Is(err, apperr.ErrUserNotFound) {
		return User{}, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return User{}, apperr.Validation("password", "must be at most 72 bytes")
		}
		return User{}, err
	}

	user := User{
		Email:        reg.Email,
		Name:         reg.Name,
		Age:          reg.Age,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Authenticate verifies credentials. It returns apperr.ErrUserNotFound for
// an unknown email and apperr.ErrInvalidCredentials for a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, pw string) (User, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return User{}, err
	}

	ok, err := s.hasher.Verify(pw, user.PasswordHash)
	if err != nil {
		return User{}, fmt.Errorf("verify password for %s: %w", user.Email, err)
	}
	if !ok {
		return User{}, apperr.ErrInvalidCredentials
	}
	return user, nil
}

// Profile returns the stored user for a session email.
func (s *Service) Profile(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}
