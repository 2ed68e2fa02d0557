package google

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestAuthService(validate validateFunc) *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
	authService := NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
	authService.validate = validate

	return authService
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	authService := newTestAuthService(func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":          "test@example.com",
				"email_verified": true,
				"name":           "Test User",
				"picture":        "https://lh3.googleusercontent.com/a/photo",
			},
		}, nil
	})

	oauthUser, err := authService.VerifyIDToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, "google-sub-123", oauthUser.ID)
	assert.Equal(t, "test@example.com", oauthUser.Email)
	assert.Equal(t, "Test User", oauthUser.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, oauthUser.Provider)
	assert.True(t, oauthUser.EmailVerified)
}

func TestAuthService_VerifyIDToken_StringVerifiedFlag(t *testing.T) {
	authService := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Claims: map[string]any{"sub": "abc", "email_verified": "false"}}, nil
	})

	oauthUser, err := authService.VerifyIDToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "abc", oauthUser.ID)
	assert.False(t, oauthUser.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejected(t *testing.T) {
	authService := newTestAuthService(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	})

	oauthUser, err := authService.VerifyIDToken(context.Background(), "id-token")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_NotConfigured(t *testing.T) {
	authService := NewAuthService(&config.Config{}, slog.Default())

	_, err := authService.VerifyIDToken(context.Background(), "id-token")

	assert.Error(t, err)
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := newTestAuthService(nil)

	assert.Equal(t, entity.ProviderTypeGoogle, authService.GetProvider())
}
