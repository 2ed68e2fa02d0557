package google

import (
	"context"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"
)

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService runs the authorization code flow against Google.
type OAuthService struct {
	config *oauth2.Config
}

// NewOAuthService creates a new Google OAuth service. It returns nil when no
// client credentials are configured, which disables the browser sign-in routes.
func NewOAuthService(cfg *config.Config) service.OAuthCodeExchanger {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" {
		return nil
	}

	return &OAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes:       defaultScopes,
			Endpoint:     googleendpoint.Endpoint,
		},
	}
}

// AuthCodeURL builds the consent URL. state is checked by the callback handler against its cookie.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeIDToken trades code for a token set and returns its id_token.
func (s *OAuthService) ExchangeIDToken(ctx context.Context, code string) (string, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange authorization code")
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", errors.New("token response carries no id_token")
	}

	return idToken, nil
}
