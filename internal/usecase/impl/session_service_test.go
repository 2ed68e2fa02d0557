package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_IssueSession(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	srv := NewSessionService(tokenService, newDiscardLogger())

	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, Provider: entity.ProviderTypeGoogle}
	expiresAt := time.Now().Add(24 * time.Hour)
	tokenService.EXPECT().GenerateSessionToken(user).Return("signed", expiresAt, nil)

	session, err := srv.IssueSession(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "signed", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.Equal(t, entity.ProviderTypeGoogle, session.Provider)
}

func TestSessionService_IssueSession_SigningFailure(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	srv := NewSessionService(tokenService, newDiscardLogger())

	user := &entity.User{ID: uuid.New()}
	tokenService.EXPECT().GenerateSessionToken(user).Return("", time.Time{}, errors.New("no key"))

	session, err := srv.IssueSession(context.Background(), user)

	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestSessionService_VerifySession(t *testing.T) {
	userID := uuid.New()

	t.Run("valid session token", func(t *testing.T) {
		tokenService := mockSvc.NewMockTokenService(t)
		srv := NewSessionService(tokenService, newDiscardLogger())
		tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
			UserID: userID,
			Role:   entity.RoleUser,
			Type:   service.TokenTypeSession,
		}, nil)

		claims, err := srv.VerifySession(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("every failure is an invalid token", func(t *testing.T) {
		tokenService := mockSvc.NewMockTokenService(t)
		srv := NewSessionService(tokenService, newDiscardLogger())
		tokenService.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		_, err := srv.VerifySession(context.Background(), "expired")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("wrong token type", func(t *testing.T) {
		tokenService := mockSvc.NewMockTokenService(t)
		srv := NewSessionService(tokenService, newDiscardLogger())
		tokenService.EXPECT().ValidateToken("other").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

		_, err := srv.VerifySession(context.Background(), "other")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("empty token", func(t *testing.T) {
		srv := NewSessionService(mockSvc.NewMockTokenService(t), newDiscardLogger())

		_, err := srv.VerifySession(context.Background(), "")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}
