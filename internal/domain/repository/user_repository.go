// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrStorageTimeout is returned when the storage call exceeded its deadline.
var ErrStorageTimeout = errors.New("storage timeout")

// UniqueViolationError is returned when an insert or update hits a unique index.
// Field names the logical attribute, e.g. "email" or "orderId".
type UniqueViolationError struct {
	Field string
	Err   error
}

func (e *UniqueViolationError) Error() string {
	return "unique violation on " + e.Field
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Err
}

// AsUniqueViolation extracts a UniqueViolationError from err's chain.
func AsUniqueViolation(err error) (*UniqueViolationError, bool) {
	var violation *UniqueViolationError
	if errors.As(err, &violation) {
		return violation, true
	}

	return nil, false
}

// Page selects a window of a listing.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}

// UserField names a mutable user attribute written by UserRepository.Update.
type UserField string

const (
	UserFieldUsername         UserField = "username"
	UserFieldMobileNumber     UserField = "mobileNumber"
	UserFieldPasswordHash     UserField = "passwordHash"
	UserFieldProvider         UserField = "provider"
	UserFieldExternalID       UserField = "externalId"
	UserFieldIsEmailVerified  UserField = "isEmailVerified"
	UserFieldIsMobileVerified UserField = "isMobileVerified"
	UserFieldRole             UserField = "role"
	UserFieldProfileImage     UserField = "profileImage"
)

// UserRepository defines the standard operations for user persistence.
// Unique indexes on username, email, mobile number and external id are authoritative;
// violations surface as *UniqueViolationError. Update writes only the listed fields,
// so concurrent changes to other columns, reward points included, are kept.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByMobileNumber(ctx context.Context, mobile string) (*entity.User, error)
	FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user *entity.User, fields []UserField) error
	UpdateRewardPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page Page) ([]*entity.User, int64, error)
}
