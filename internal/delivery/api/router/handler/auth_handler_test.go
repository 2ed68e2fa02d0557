package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authHandlerFixtures struct {
	echo      *echo.Echo
	identity  *mockUsecase.MockIdentityUsecase
	exchanger *mockSvc.MockOAuthCodeExchanger
}

func createTestAuthHandler(t *testing.T, successRedirect string) authHandlerFixtures {
	fx := authHandlerFixtures{
		echo:      newTestEcho(),
		identity:  mockUsecase.NewMockIdentityUsecase(t),
		exchanger: mockSvc.NewMockOAuthCodeExchanger(t),
	}

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{SuccessRedirect: successRedirect}}
	h := NewAuthHandler(AuthHandlerParams{
		IdentityUC:    fx.identity,
		CodeExchanger: fx.exchanger,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	fx.echo.POST("/auth/signup", h.SignUp)
	fx.echo.POST("/auth/signin", h.SignIn)
	fx.echo.POST("/auth/signout", h.SignOut)
	fx.echo.GET("/auth/check-username", h.CheckUsername)
	fx.echo.POST("/auth/external-callback", h.ExternalCallback)
	fx.echo.GET("/auth/google/login", h.GoogleLogin)
	fx.echo.GET("/auth/google/callback", h.GoogleCallback)
	fx.echo.POST("/auth/forgot-password", h.ForgotPassword)
	fx.echo.POST("/auth/reset-password", h.ResetPassword)
	fx.echo.POST("/auth/verify-email", h.VerifyEmail)

	return fx
}

func authOutput() *usecase.AuthOutput {
	userID := uuid.New()

	return &usecase.AuthOutput{
		User: &entity.User{ID: userID, Email: "jane@example.com", Role: entity.RoleUser, Provider: entity.ProviderTypeLocal},
		Session: &usecase.Session{
			Token:     "signed.jwt.token",
			ExpiresAt: time.Now().Add(24 * time.Hour),
			UserID:    userID,
			Role:      entity.RoleUser,
		},
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	fx := createTestAuthHandler(t, "")
	fx.identity.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Email: "jane@example.com", Password: "secret1"}).
		Return(authOutput(), nil)

	rec := doJSON(fx.echo, http.MethodPost, "/auth/signup", `{"email":"jane@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope[AuthResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "signed.jwt.token", body.Data.Token)
	assert.Equal(t, "jane@example.com", body.Data.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	cookie := findCookie(rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestAuthHandler_SignIn_WrongProvider(t *testing.T) {
	fx := createTestAuthHandler(t, "")
	fx.identity.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.NewWrongProviderError("google"))

	rec := doJSON(fx.echo, http.MethodPost, "/auth/signin", `{"email":"jane@example.com","password":"x"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope[any](t, rec)
	assert.Equal(t, "WRONG_PROVIDER", body.Error.Code)
	assert.Equal(t, "google", body.Error.Provider)
	assert.Nil(t, findCookie(rec, middleware.SessionCookieName))
}

func TestAuthHandler_SignOut(t *testing.T) {
	fx := createTestAuthHandler(t, "")

	rec := doJSON(fx.echo, http.MethodPost, "/auth/signout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_CheckUsername(t *testing.T) {
	fx := createTestAuthHandler(t, "")
	fx.identity.EXPECT().CheckUsername(mock.Anything, "jane").Return(false, nil)

	rec := doJSON(fx.echo, http.MethodGet, "/auth/check-username?username=jane", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeEnvelope[map[string]bool](t, rec).Data["available"])

	rec = doJSON(fx.echo, http.MethodGet, "/auth/check-username", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username", decodeEnvelope[any](t, rec).Error.Field)
}

func TestAuthHandler_ExternalCallback(t *testing.T) {
	t.Run("id token", func(t *testing.T) {
		fx := createTestAuthHandler(t, "")
		fx.identity.EXPECT().
			ExternalCallback(mock.Anything, &usecase.ExternalCallbackInput{IDToken: "google-id-token"}).
			Return(authOutput(), nil)

		rec := doJSON(fx.echo, http.MethodPost, "/auth/external-callback", `{"idToken":"google-id-token"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, findCookie(rec, middleware.SessionCookieName))
	})

	t.Run("missing token and code", func(t *testing.T) {
		fx := createTestAuthHandler(t, "")

		rec := doJSON(fx.echo, http.MethodPost, "/auth/external-callback", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_GoogleCodeFlow(t *testing.T) {
	fx := createTestAuthHandler(t, "https://shop.example.com/account")
	fx.exchanger.EXPECT().
		AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			return "https://accounts.google.com/o/oauth2/auth?state=" + url.QueryEscape(state)
		})

	rec := doJSON(fx.echo, http.MethodGet, "/auth/google/login", "")
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	stateCookie := findCookie(rec, oauthStateCookie)
	require.NotNil(t, stateCookie)
	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, stateCookie.Value, location.Query().Get("state"))

	fx.identity.EXPECT().
		ExternalCallback(mock.Anything, &usecase.ExternalCallbackInput{Code: "auth-code"}).
		Return(authOutput(), nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=auth-code&state="+stateCookie.Value, nil)
	req.AddCookie(stateCookie)
	rec = httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://shop.example.com/account", rec.Header().Get(echo.HeaderLocation))
	assert.NotNil(t, findCookie(rec, middleware.SessionCookieName))
}

func TestAuthHandler_GoogleCallback_StateMismatch(t *testing.T) {
	fx := createTestAuthHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=auth-code&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: "expected"})
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OAUTH_STATE_INVALID", decodeEnvelope[any](t, rec).Error.Code)
}

func TestAuthHandler_GoogleLogin_NotConfigured(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(AuthHandlerParams{
		IdentityUC: mockUsecase.NewMockIdentityUsecase(t),
		Config:     &config.Config{},
		Logger:     newDiscardLogger(),
	})
	e.GET("/auth/google/login", h.GoogleLogin)

	rec := doJSON(e, http.MethodGet, "/auth/google/login", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	fx := createTestAuthHandler(t, "")

	fx.identity.EXPECT().RequestPasswordReset(mock.Anything, "jane@example.com").Return(nil)
	rec := doJSON(fx.echo, http.MethodPost, "/auth/forgot-password", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(fx.echo, http.MethodPost, "/auth/forgot-password", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email", decodeEnvelope[any](t, rec).Error.Field)
}

func TestAuthHandler_ResetPassword_InvalidLink(t *testing.T) {
	fx := createTestAuthHandler(t, "")
	e, identity := fx.echo, fx.identity

	identity.EXPECT().
		ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "stale", Password: "new-secret"}).
		Return(domainerrors.ErrInvalidLink)
	rec := doJSON(e, http.MethodPost, "/auth/reset-password", `{"token":"stale","password":"new-secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_LINK", decodeEnvelope[any](t, rec).Error.Code)

	identity.EXPECT().VerifyEmail(mock.Anything, "verify.jwt").Return(nil)
	rec = doJSON(e, http.MethodPost, "/auth/verify-email?token=verify.jwt", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
