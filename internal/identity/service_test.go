package identity

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
	"github.com/congo-pay/pocket_ledger/internal/password"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), password.NewHasher(bcrypt.MinCost))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Name: "Alice", Email: "  A@X.com ", Password: "pw123", Age: 30})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if string(user.PasswordHash) == "pw123" {
		t.Fatalf("password stored in clear")
	}

	authed, err := svc.Authenticate(ctx, "a@x.com", "pw123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.Name != "Alice" || authed.Age != 30 {
		t.Fatalf("unexpected user %+v", authed)
	}
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Name: "Alice", Email: "a@x.com", Password: "pw123", Age: 30}); err != nil {
		t.Fatalf("register: %v", err)
	}
	for _, email := range []string{"a@x.com", "A@X.COM", " a@X.com"} {
		_, err := svc.Register(ctx, Registration{Name: "Other", Email: email, Password: "pw", Age: 22})
		if !errors.Is(err, apperr.ErrDuplicateEmail) {
			t.Fatalf("email %q: expected duplicate, got %v", email, err)
		}
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := map[string]Registration{
		"name":     {Name: " ", Email: "a@x.com", Password: "pw", Age: 30},
		"email":    {Name: "Alice", Email: "", Password: "pw", Age: 30},
		"password": {Name: "Alice", Email: "a@x.com", Password: "   ", Age: 30},
		"age":      {Name: "Alice", Email: "a@x.com", Password: "pw", Age: 0},
	}
	for field, reg := range cases {
		_, err := svc.Register(ctx, reg)
		var vErr *apperr.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected validation error, got %v", field, err)
		}
		if vErr.Field != field {
			t.Fatalf("expected field %s, got %s", field, vErr.Field)
		}
	}

	if _, err := svc.Register(ctx, Registration{Name: "Alice", Email: "a@x.com", Password: "pw", Age: -3}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected negative age to be rejected, got %v", err)
	}
	if _, err := svc.Profile(ctx, "a@x.com"); !errors.Is(err, apperr.ErrUserNotFound) {
		t.Fatalf("rejected registrations must not persist, got %v", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Name: "Alice", Email: "a@x.com", Password: "pw123", Age: 30}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, "nobody@x.com", "pw123"); !errors.Is(err, apperr.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	for _, pw := range []string{"", "pw12", "PW123", "pw123 "} {
		if _, err := svc.Authenticate(ctx, "a@x.com", pw); !errors.Is(err, apperr.ErrInvalidCredentials) {
			t.Fatalf("password %q: expected invalid credentials, got %v", pw, err)
		}
	}
}

func TestAuthenticateCorruptHash(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, password.NewHasher(bcrypt.MinCost))
	ctx := context.Background()

	if err := repo.Create(ctx, User{Email: "a@x.com", Name: "Alice", Age: 30, PasswordHash: []byte("garbage")}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Authenticate(ctx, "a@x.com", "pw123")
	if !errors.Is(err, password.ErrMalformedHash) {
		t.Fatalf("expected malformed hash error, got %v", err)
	}
	if errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Fatalf("corrupt hash must not look like a wrong password")
	}
}
