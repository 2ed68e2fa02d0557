package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTypeSession marks a bearer session token.
	TokenTypeSession = "session"
	// TokenTypeEmailVerify marks a link token that confirms an email address.
	TokenTypeEmailVerify = "email_verify"
	// TokenTypePasswordReset marks a link token that authorises one password change.
	TokenTypePasswordReset = "password_reset"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID   uuid.UUID
	Role     entity.Role
	Provider entity.ProviderType
	Type     string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
type TokenService interface {
	// GenerateSessionToken signs a token for user that expires after the configured TTL.
	GenerateSessionToken(user *entity.User) (token string, expiresAt time.Time, err error)

	// GenerateActionToken signs a single purpose token for an emailed link.
	GenerateActionToken(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error)

	// ValidateToken returns the embedded claims. Every failure is reported as the same invalid token error.
	ValidateToken(tokenString string) (*Claims, error)
}
