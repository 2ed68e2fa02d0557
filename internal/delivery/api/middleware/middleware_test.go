package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	newServer := func(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
		sessions := mockUsecase.NewMockSessionUsecase(t)
		auth := NewAuthMiddleware(sessions)

		e := newTestEcho()
		e.GET("/me", func(c echo.Context) error {
			id, ok := GetUserID(c)
			require.True(t, ok)

			return c.String(http.StatusOK, id.String()+" "+deliverycontext.GetRole(c).String())
		}, auth.Authenticate)
		e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

		return e, sessions
	}

	t.Run("bearer token", func(t *testing.T) {
		e, sessions := newServer(t)
		sessions.EXPECT().VerifySession(mock.Anything, "tok").
			Return(&service.Claims{UserID: userID, Role: entity.RoleUser, Type: service.TokenTypeSession}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String()+" user", rec.Body.String())
	})

	t.Run("session cookie", func(t *testing.T) {
		e, sessions := newServer(t)
		sessions.EXPECT().VerifySession(mock.Anything, "cookie-tok").
			Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		e, _ := newServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		e, _ := newServer(t)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic Zm9vOmJhcg==")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		e, sessions := newServer(t)
		sessions.EXPECT().VerifySession(mock.Anything, "expired").Return(nil, domainerrors.ErrInvalidToken)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin role required", func(t *testing.T) {
		e, sessions := newServer(t)
		sessions.EXPECT().VerifySession(mock.Anything, "user-tok").
			Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
		sessions.EXPECT().VerifySession(mock.Anything, "admin-tok").
			Return(&service.Claims{UserID: userID, Role: entity.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer user-tok")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer admin-tok")
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{"wrapped app error", errors.Wrap(domainerrors.ErrOrderNotFound, "lookup"), http.StatusNotFound, "ORDER_NOT_FOUND", ""},
		{"validation error", domainerrors.NewValidationError("phone", "phone must be exactly 11 digits"), http.StatusBadRequest, "VALIDATION_FAILED", "phone"},
		{"duplicate field", domainerrors.NewDuplicateFieldError("email"), http.StatusConflict, "DUPLICATE_FIELD", "email"},
		{"deadline", errors.WithStack(context.DeadlineExceeded), http.StatusGatewayTimeout, "TIMEOUT", ""},
		{"echo error", echo.ErrNotFound, http.StatusNotFound, "HTTP_ERROR", ""},
		{"unknown error", errors.New("pq: connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantField, body.Error.Field)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestErrorMiddleware_WrongProviderCarriesProvider(t *testing.T) {
	e := newTestEcho()
	e.POST("/auth/signin", func(echo.Context) error { return domainerrors.NewWrongProviderError("google") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/signin", nil))

	body := decode(t, rec)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "WRONG_PROVIDER", body.Error.Code)
	assert.Equal(t, "google", body.Error.Provider)
	assert.Contains(t, body.Message, "Google")
}
