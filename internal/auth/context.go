package auth

import "context"

// LocalsKey is the fiber.Ctx locals key holding verified SessionClaims.
const LocalsKey = "session_claims"

type claimsKey struct{}

// WithClaims returns a context carrying verified session claims.
func WithClaims(ctx context.Context, claims SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the session claims attached by the auth gate.
func ClaimsFromContext(ctx context.Context) (SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(SessionClaims)
	if !ok || claims.Email == "" {
		return SessionClaims{}, false
	}
	return claims, true
}
