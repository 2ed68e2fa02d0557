package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueSession signs a session credential for a resolved user.
func (srv *sessionService) IssueSession(ctx context.Context, user *entity.User) (*usecase.Session, error) {
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "cannot issue a session without a user")
	}

	token, expiresAt, err := srv.tokenService.GenerateSessionToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.String("user_id", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to sign session token")
	}

	srv.log(ctx).Debug("Session issued", slog.String("user_id", user.ID.String()), slog.String("provider", user.Provider.String()))

	return &usecase.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Role:      user.Role,
		Provider:  user.Provider,
	}, nil
}

// VerifySession validates token and returns its claims. Every failure is reported as an invalid token.
func (srv *sessionService) VerifySession(ctx context.Context, token string) (*service.Claims, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Session verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken
	}

	if claims.Type != service.TokenTypeSession {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
