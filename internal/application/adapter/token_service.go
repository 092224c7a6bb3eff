// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService validates access tokens minted by the hosted auth provider.
// The backend shares the signing secret with the provider; it never issues
// user-facing tokens itself outside of tests.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// GenerateAccessToken mints a short-lived access token. Used by tests and
	// internal tooling only.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string, ttl time.Duration) (string, error)
}
