package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionCookieName is the HttpOnly cookie carrying the session token.
const SessionCookieName = "accessToken"

// AuthMiddleware provides middleware for session authentication and authorization.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate accepts a Bearer token or the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}

		claims, err := m.sessions.VerifySession(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Role)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func extractToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return "", errors.Wrap(domainerrors.ErrInvalidToken, "authorization header must be a Bearer token")
		}

		return strings.TrimSpace(token), nil
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.WithStack(domainerrors.ErrUnauthorized)
}

// RequireRole rejects callers without role. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetUserID(c); !ok {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			if deliverycontext.GetRole(c) != role {
				return errors.Wrapf(domainerrors.ErrForbidden, "requires %s role", role)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRequester returns the authenticated caller for ownership checks.
func GetRequester(c echo.Context) (usecase.Requester, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return usecase.Requester{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return usecase.Requester{UserID: userID, Role: deliverycontext.GetRole(c)}, nil
}
