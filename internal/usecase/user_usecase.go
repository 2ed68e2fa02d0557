package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// UpdateUserInput carries the admin-editable fields. Nil fields are left unchanged.
type UpdateUserInput struct {
	Username         *string      `json:"username"`
	MobileNumber     *string      `json:"mobileNumber"`
	Role             *entity.Role `json:"role"`
	IsEmailVerified  *bool        `json:"isEmailVerified"`
	IsMobileVerified *bool        `json:"isMobileVerified"`
	ProfileImage     *string      `json:"profileImage"`
}

// UpdateProfileInput carries the fields a user may change on their own account.
type UpdateProfileInput struct {
	Username     *string `json:"username"`
	MobileNumber *string `json:"mobileNumber"`
	ProfileImage *string `json:"profileImage"`
}

// UserListOutput is a page of users.
type UserListOutput struct {
	Users []*entity.User
	Total int64
}

// UserUsecase covers profile self-service and the admin user back-office.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ListUsers(ctx context.Context, page repository.Page) (*UserListOutput, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SetRewardPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error)
}
