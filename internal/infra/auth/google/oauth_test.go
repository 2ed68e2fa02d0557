package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testOAuthConfig() *config.Config {
	return &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURL:  "http://localhost:8080/auth/google/callback",
	}}
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	exchanger := NewOAuthService(testOAuthConfig())
	require.NotNil(t, exchanger)

	consent, err := url.Parse(exchanger.AuthCodeURL("state-123"))
	require.NoError(t, err)

	query := consent.Query()
	assert.Equal(t, "accounts.google.com", consent.Host)
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "state-123", query.Get("state"))
}

func TestOAuthService_DisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewOAuthService(&config.Config{}))
	assert.Nil(t, NewOAuthService(&config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "only-id"}}))
}

func newExchangeServer(t *testing.T, body string) *OAuthService {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	exchanger := NewOAuthService(testOAuthConfig()).(*OAuthService)
	exchanger.config.Endpoint = oauth2.Endpoint{AuthURL: server.URL + "/auth", TokenURL: server.URL + "/token"}

	return exchanger
}

func TestOAuthService_ExchangeIDToken(t *testing.T) {
	exchanger := newExchangeServer(t, `{"access_token":"at","token_type":"Bearer","expires_in":3600,"id_token":"google-id-token"}`)

	idToken, err := exchanger.ExchangeIDToken(context.Background(), "auth-code")

	require.NoError(t, err)
	assert.Equal(t, "google-id-token", idToken)
}

func TestOAuthService_ExchangeIDToken_Missing(t *testing.T) {
	exchanger := newExchangeServer(t, `{"access_token":"at","token_type":"Bearer","expires_in":3600}`)

	_, err := exchanger.ExchangeIDToken(context.Background(), "auth-code")

	assert.Error(t, err)
}
