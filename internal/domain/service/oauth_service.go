package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthAuthService verifies ID tokens issued by the external provider.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// OAuthCodeExchanger runs the server side authorization code flow.
type OAuthCodeExchanger interface {
	// AuthCodeURL builds the consent URL carrying state.
	AuthCodeURL(state string) string

	// ExchangeIDToken trades an authorization code for the provider's ID token.
	ExchangeIDToken(ctx context.Context, code string) (string, error)
}
