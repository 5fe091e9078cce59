// Package jwt implementa auth.AuthVerifier con tokens HS256 firmados con un
// secreto compartido.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"livestock-registry/internal/ports/auth"
)

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrNotConfigured  = errors.New("jwt verifier not configured")
	ErrMissingAgentID = errors.New("token claims missing agent id")
)

// AgentClaims son los claims propios; sub es el AgentID.
type AgentClaims struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
	gojwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNotConfigured
	}
	return &Verifier{secret: []byte(secret), issuer: strings.TrimSpace(issuer), now: time.Now}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(v.now),
		gojwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(v.issuer))
	}

	parsed, err := gojwt.ParseWithClaims(token, &AgentClaims{}, func(t *gojwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	c, ok := parsed.Claims.(*AgentClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	agentID := strings.TrimSpace(c.Subject)
	if agentID == "" {
		return auth.Claims{}, ErrMissingAgentID
	}
	return auth.Claims{UserID: agentID, Name: c.Name, Role: c.Role}, nil
}

// Issue firma un token para un agente (CLI de desarrollo y tests).
func (v *Verifier) Issue(agentID, name string, ttl time.Duration) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrNotConfigured
	}
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return "", ErrMissingAgentID
	}
	now := v.now()
	claims := AgentClaims{
		Name: strings.TrimSpace(name),
		Role: "field_agent",
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   agentID,
			Issuer:    v.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(v.secret)
}
