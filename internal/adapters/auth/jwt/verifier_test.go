package jwt

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livestock-registry/internal/ports/auth"
)

func TestVerifier_IssueAndVerify(t *testing.T) {
	v, err := NewVerifier("s3cret", "livestock-registry")
	require.NoError(t, err)

	tok, err := v.Issue("agent-7", "Ravi", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "agent-7", Name: "Ravi", Role: "field_agent"}, claims)
}

func TestVerifier_Rejects(t *testing.T) {
	v, err := NewVerifier("s3cret", "livestock-registry")
	require.NoError(t, err)
	other, err := NewVerifier("other", "livestock-registry")
	require.NoError(t, err)
	wrongIssuer, err := NewVerifier("s3cret", "someone-else")
	require.NoError(t, err)

	good, err := v.Issue("agent-7", "", time.Hour)
	require.NoError(t, err)

	expired, err := v.Issue("agent-7", "", -time.Minute)
	require.NoError(t, err)

	noExp, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "agent-7"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	none, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.RegisteredClaims{
		Subject:   "agent-7",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = other.Verify(ctx, good)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "bad signature")
	_, err = wrongIssuer.Verify(ctx, good)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "issuer mismatch")
	_, err = v.Verify(ctx, expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "expired")
	_, err = v.Verify(ctx, noExp)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "exp required")
	_, err = v.Verify(ctx, none)
	assert.ErrorIs(t, err, auth.ErrInvalidToken, "alg none")
	_, err = v.Verify(ctx, "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(" ", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
