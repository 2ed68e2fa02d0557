package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// Session is the signed bearer credential plus the descriptor kept by the caller.
type Session struct {
	Token     string
	ExpiresAt time.Time
	UserID    uuid.UUID
	Role      entity.Role
	Provider  entity.ProviderType
}

// SessionUsecase issues and verifies session credentials.
type SessionUsecase interface {
	IssueSession(ctx context.Context, user *entity.User) (*Session, error)
	VerifySession(ctx context.Context, token string) (*service.Claims, error)
}
