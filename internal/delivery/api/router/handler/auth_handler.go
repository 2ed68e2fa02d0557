// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.uber.org/fx"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC    usecase.IdentityUsecase
	CodeExchanger service.OAuthCodeExchanger `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// AuthHandler serves sign-up, sign-in and the external provider flows.
type AuthHandler struct {
	identityUC      usecase.IdentityUsecase
	codeExchanger   service.OAuthCodeExchanger
	secureCookies   bool
	successRedirect string
	logger          *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	successRedirect := ""
	if params.Config.GoogleOAuth != nil {
		successRedirect = params.Config.GoogleOAuth.SuccessRedirect
	}

	return &AuthHandler{
		identityUC:      params.IdentityUC,
		codeExchanger:   params.CodeExchanger,
		secureCookies:   params.Config.HTTP.SecureCookies,
		successRedirect: successRedirect,
		logger:          params.Logger,
	}
}

// SignUp creates a local account and starts a session.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid sign-up input")
	}

	output, err := h.identityUC.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusCreated, newAuthResponse(output), "Account created")
}

// SignIn verifies credentials and starts a session.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid sign-in input")
	}

	output, err := h.identityUC.SignIn(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Signed in")
}

// SignOut clears the session cookie. Bearer tokens simply expire.
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// CheckUsername reports whether a username is still free.
func (h *AuthHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return domainerrors.NewValidationError("username", "username is required")
	}

	available, err := h.identityUC.CheckUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "")
}

// ExternalCallback accepts an ID token or an authorization code from the client.
func (h *AuthHandler) ExternalCallback(c echo.Context) error {
	var input usecase.ExternalCallbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid external sign-in input")
	}
	if input.IDToken == "" && input.Code == "" {
		return domainerrors.NewValidationError("idToken", "idToken or code is required")
	}

	output, err := h.identityUC.ExternalCallback(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Signed in")
}

// ForgotPassword mails a reset link. The response never reveals whether the account exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.identityUC.RequestPasswordReset(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "If the account exists, a reset link has been sent")
}

// ResetPassword redeems a reset link.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.identityUC.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

// VerifyEmail redeems the link sent at sign-up. The token comes in the body or as ?token=.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid verification input")
	}
	if input.Token == "" {
		input.Token = c.QueryParam("token")
	}

	if err := h.identityUC.VerifyEmail(c.Request().Context(), input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

// GoogleLogin redirects the browser to the consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if h.codeExchanger == nil {
		return errors.Wrap(domainerrors.ErrOAuthFailed, "google code flow is not configured")
	}

	state := xid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   int(oauthStateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusTemporaryRedirect, h.codeExchanger.AuthCodeURL(state))
}

// GoogleCallback completes the code flow started by GoogleLogin.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		return errors.WithStack(domainerrors.ErrOAuthStateInvalid)
	}

	c.SetCookie(&http.Cookie{Name: oauthStateCookie, Value: "", Path: "/auth/google", MaxAge: -1, HttpOnly: true})

	if reason := c.QueryParam("error"); reason != "" {
		return errors.Wrapf(domainerrors.ErrOAuthFailed, "provider returned %s", reason)
	}

	code := c.QueryParam("code")
	if code == "" {
		return domainerrors.NewValidationError("code", "code is required")
	}

	output, err := h.identityUC.ExternalCallback(c.Request().Context(), &usecase.ExternalCallbackInput{Code: code})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	if h.successRedirect != "" {
		return c.Redirect(http.StatusFound, h.successRedirect)
	}

	return response.Success(c, http.StatusOK, newAuthResponse(output), "Signed in")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, session *usecase.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
