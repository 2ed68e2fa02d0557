package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's own account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.GetUser(ctx, userID)
}

// UpdateProfile applies the self-service fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	return srv.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Username:     input.Username,
		MobileNumber: input.MobileNumber,
		ProfileImage: input.ProfileImage,
	})
}

// ListUsers returns a page of accounts.
func (srv *userService) ListUsers(ctx context.Context, page repository.Page) (*usecase.UserListOutput, error) {
	users, total, err := srv.userRepo.List(ctx, page.Normalize())
	if err != nil {
		return nil, translateStorageError(err, "failed to list users")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return &usecase.UserListOutput{Users: sanitized, Total: total}, nil
}

// GetUser returns one account without credential material.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// UpdateUser applies the non-nil fields of input.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}

	var fields []repository.UserField
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
		fields = append(fields, repository.UserFieldUsername)
	}
	if input.MobileNumber != nil {
		user.MobileNumber = entity.NormalizeMobile(*input.MobileNumber)
		fields = append(fields, repository.UserFieldMobileNumber)
	}
	if input.ProfileImage != nil {
		user.ProfileImage = strings.TrimSpace(*input.ProfileImage)
		fields = append(fields, repository.UserFieldProfileImage)
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.NewValidationError("role", "role must be one of user, admin")
		}
		user.Role = *input.Role
		fields = append(fields, repository.UserFieldRole)
	}
	if input.IsEmailVerified != nil {
		user.IsEmailVerified = *input.IsEmailVerified
		fields = append(fields, repository.UserFieldIsEmailVerified)
	}
	if input.IsMobileVerified != nil {
		user.IsMobileVerified = *input.IsMobileVerified
		fields = append(fields, repository.UserFieldIsMobileVerified)
	}

	if !user.HasContact() {
		return nil, domainerrors.NewValidationError("mobileNumber", "an email or a mobile number is required")
	}

	if err := srv.userRepo.Update(ctx, user, fields); err != nil {
		return nil, translateStorageError(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.String("user_id", id.String()))

	return user.Sanitized(), nil
}

// DeleteUser removes the account permanently.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return translateStorageError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", id.String()))

	return nil
}

// SetRewardPoints replaces the reward point balance of an account.
func (srv *userService) SetRewardPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error) {
	if points < 0 {
		return nil, domainerrors.NewValidationError("rewardPoints", "reward points cannot be negative")
	}

	user, err := srv.userRepo.UpdateRewardPoints(ctx, id, points)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, translateStorageError(err, "failed to update reward points")
	}

	srv.log(ctx).Info("Reward points set", slog.String("user_id", id.String()), slog.Int("points", points))

	return user.Sanitized(), nil
}

func (srv *userService) find(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, translateStorageError(err, "failed to find user")
	}

	return user, nil
}
