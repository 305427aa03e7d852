package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-pay/pocket_ledger/internal/apperr"
)

const testSecret = "test-secret-test-secret-test-secret"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec(testSecret, 7*24*time.Hour)
	require.NoError(t, err)
	return codec
}

func TestIssueAndVerify(t *testing.T) {
	codec := newTestCodec(t)

	tok, err := codec.Issue(SessionClaims{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), tok.ExpiresAt, 2*time.Second)

	claims, err := codec.Verify(tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.ExpiresAt.Equal(tok.ExpiresAt))
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := newTestCodec(t).Issue(SessionClaims{Email: "a@x.com"})
	require.NoError(t, err)

	other, err := NewCodec("another-secret-another-secret-xx", time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Equal(t, "invalid", Reason(err))
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Now().Add(-8 * 24 * time.Hour)
	codec := newTestCodec(t)

	tok, err := codec.WithClock(func() time.Time { return issuedAt }).Issue(SessionClaims{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = codec.Verify(tok.Value)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Equal(t, "expired", Reason(err))
}

func TestVerifyMalformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, raw := range []string{"", "abc", "not.a.jwt"} {
		_, err := codec.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "token %q", raw)
	}
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, tokenClaims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = newTestCodec(t).Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRequiresExpiryAndEmail(t *testing.T) {
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{Email: "a@x.com"}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = newTestCodec(t).Verify(noExp)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = newTestCodec(t).Verify(noEmail)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewCodecValidation(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	assert.Error(t, err)
	_, err = NewCodec(testSecret, 0)
	assert.Error(t, err)

	_, err = newTestCodec(t).Issue(SessionClaims{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrUnauthenticated))
}
