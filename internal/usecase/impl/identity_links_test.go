package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func linkClaims(userID uuid.UUID, tokenType string, issuedAt time.Time) *service.Claims {
	return &service.Claims{
		UserID: userID,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(30 * time.Minute)),
		},
	}
}

func TestIdentityService_RequestPasswordReset(t *testing.T) {
	t.Run("mails a reset link to local accounts", func(t *testing.T) {
		fx := createTestIdentityService(t)
		user := &entity.User{ID: uuid.New(), Username: "jane", Email: "jane@example.com", PasswordHash: "hashed"}

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(user, nil)
		fx.tokens.EXPECT().GenerateActionToken(user.ID, service.TokenTypePasswordReset, 30*time.Minute).Return("reset.jwt", nil)
		fx.mailer.EXPECT().
			Dispatch(service.MailMessage{
				To:        "jane@example.com",
				Template:  service.MailTemplateReset,
				Username:  "jane",
				ActionURL: "https://shop.example.com/reset-password?token=reset.jwt",
			}).
			Return()

		require.NoError(t, fx.service.RequestPasswordReset(context.Background(), " Jane@Example.com "))
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.RequestPasswordReset(context.Background(), "ghost@example.com"))
	})

	t.Run("external accounts get nothing", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, "g@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "g@example.com", Provider: entity.ProviderTypeGoogle}, nil)

		require.NoError(t, fx.service.RequestPasswordReset(context.Background(), "g@example.com"))
	})

	t.Run("malformed email", func(t *testing.T) {
		fx := createTestIdentityService(t)

		requireValidationField(t, fx.service.RequestPasswordReset(context.Background(), "jane@"), "email")
	})
}

func TestIdentityService_ResetPassword(t *testing.T) {
	userID := uuid.New()
	issuedAt := time.Now().Truncate(time.Second)

	t.Run("stores the new hash", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("reset.jwt").Return(linkClaims(userID, service.TokenTypePasswordReset, issuedAt), nil)
		fx.userRepo.EXPECT().
			FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, PasswordHash: "old", UpdatedAt: issuedAt.Add(-time.Hour)}, nil)
		fx.hasher.EXPECT().Hash("new-secret").Return("new-hash", nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" }),
				[]repository.UserField{repository.UserFieldPasswordHash}).
			Return(nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "reset.jwt", Password: "new-secret"})

		require.NoError(t, err)
	})

	t.Run("link used once is stale", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("reset.jwt").Return(linkClaims(userID, service.TokenTypePasswordReset, issuedAt), nil)
		fx.userRepo.EXPECT().
			FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, PasswordHash: "changed", UpdatedAt: issuedAt.Add(2 * time.Second)}, nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "reset.jwt", Password: "new-secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidLink))
	})

	t.Run("link used within the issuing second is stale", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("reset.jwt").Return(linkClaims(userID, service.TokenTypePasswordReset, issuedAt), nil)
		fx.userRepo.EXPECT().
			FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, PasswordHash: "changed", UpdatedAt: issuedAt.Add(300 * time.Millisecond)}, nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "reset.jwt", Password: "new-secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidLink))
	})

	t.Run("session token is not a reset link", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("session.jwt").Return(linkClaims(userID, service.TokenTypeSession, issuedAt), nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "session.jwt", Password: "new-secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidLink))
	})

	t.Run("expired or forged", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "bad", Password: "new-secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidLink))
	})

	t.Run("short password", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("reset.jwt").Return(linkClaims(userID, service.TokenTypePasswordReset, issuedAt), nil)

		err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "reset.jwt", Password: "123"})

		requireValidationField(t, err, "password")
	})
}

func TestIdentityService_VerifyEmail(t *testing.T) {
	userID := uuid.New()
	issuedAt := time.Now()

	t.Run("marks the email verified", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("verify.jwt").Return(linkClaims(userID, service.TokenTypeEmailVerify, issuedAt), nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.IsEmailVerified }),
				[]repository.UserField{repository.UserFieldIsEmailVerified}).
			Return(nil)

		require.NoError(t, fx.service.VerifyEmail(context.Background(), "verify.jwt"))
	})

	t.Run("already verified is a no-op", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokens.EXPECT().ValidateToken("verify.jwt").Return(linkClaims(userID, service.TokenTypeEmailVerify, issuedAt), nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, IsEmailVerified: true}, nil)

		require.NoError(t, fx.service.VerifyEmail(context.Background(), "verify.jwt"))
	})

	t.Run("missing token", func(t *testing.T) {
		fx := createTestIdentityService(t)

		requireValidationField(t, fx.service.VerifyEmail(context.Background(), " "), "token")
	})
}
