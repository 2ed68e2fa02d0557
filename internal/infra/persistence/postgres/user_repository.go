package postgres

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB, cfg *config.Config) repository.UserRepository {
	return &userRepository{store: newStore(db, cfg)}
}

// Create inserts user, assigning an ID when it has none.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	userM := fromUserDomain(user)
	if err := db.Create(userM).Error; err != nil {
		return translateError(err, nil, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by email", "email = ?", email)
}

func (repo *userRepository) FindByMobileNumber(ctx context.Context, mobile string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by mobile number", "mobile_number = ?", mobile)
}

func (repo *userRepository) FindByExternalID(ctx context.Context, provider entity.ProviderType, externalID string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by external id",
		"provider = ? AND external_id = ?", provider.String(), externalID)
}

func (repo *userRepository) findOne(ctx context.Context, details string, query string, args ...any) (*entity.User, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var userM model.UserModel
	if err := db.Where(query, args...).First(&userM).Error; err != nil {
		return nil, translateError(err, repository.ErrUserNotFound, details)
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var count int64
	if err := db.Model(&model.UserModel{}).Where("username = ?", username).Limit(1).Count(&count).Error; err != nil {
		return false, translateError(err, nil, "failed to check username")
	}

	return count > 0, nil
}

// Update writes the listed fields of user and bumps updated_at. Columns outside
// fields are left as stored.
func (repo *userRepository) Update(ctx context.Context, user *entity.User, fields []repository.UserField) error {
	values, err := userColumnValues(fromUserDomain(user), fields)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	db, cancel := repo.conn(ctx)
	defer cancel()

	updatedAt := time.Now()
	values["updated_at"] = updatedAt

	result := db.Model(&model.UserModel{}).Where("id = ?", user.ID).Updates(values)
	if result.Error != nil {
		return translateError(result.Error, nil, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = updatedAt

	return nil
}

// userColumnValues maps the requested fields onto their column values.
func userColumnValues(userM *model.UserModel, fields []repository.UserField) (map[string]any, error) {
	values := make(map[string]any, len(fields)+1)
	for _, field := range fields {
		switch field {
		case repository.UserFieldUsername:
			values["username"] = userM.Username
		case repository.UserFieldMobileNumber:
			values["mobile_number"] = userM.MobileNumber
		case repository.UserFieldPasswordHash:
			values["password_hash"] = userM.PasswordHash
		case repository.UserFieldProvider:
			values["provider"] = userM.Provider
		case repository.UserFieldExternalID:
			values["external_id"] = userM.ExternalID
		case repository.UserFieldIsEmailVerified:
			values["is_email_verified"] = userM.IsEmailVerified
		case repository.UserFieldIsMobileVerified:
			values["is_mobile_verified"] = userM.IsMobileVerified
		case repository.UserFieldRole:
			values["role"] = userM.Role
		case repository.UserFieldProfileImage:
			values["profile_image"] = userM.ProfileImage
		default:
			return nil, errors.Errorf("unknown user field %q", field)
		}
	}

	return values, nil
}

func (repo *userRepository) UpdateRewardPoints(ctx context.Context, id uuid.UUID, points int) (*entity.User, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	var userM model.UserModel
	result := db.Model(&userM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("reward_points", points)
	if result.Error != nil {
		return nil, translateError(result.Error, nil, "failed to update reward points")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, cancel := repo.conn(ctx)
	defer cancel()

	result := db.Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error, nil, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) List(ctx context.Context, page repository.Page) ([]*entity.User, int64, error) {
	db, cancel := repo.conn(ctx)
	defer cancel()

	page = page.Normalize()

	var total int64
	if err := db.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to count users")
	}

	var userMs []model.UserModel
	if err := db.Order("created_at DESC").Limit(page.Limit).Offset(page.Offset).Find(&userMs).Error; err != nil {
		return nil, 0, translateError(err, nil, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, total, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Username:         deref(data.Username),
		Email:            deref(data.Email),
		MobileNumber:     deref(data.MobileNumber),
		PasswordHash:     deref(data.PasswordHash),
		Provider:         entity.ProviderType(data.Provider),
		ExternalID:       deref(data.ExternalID),
		IsEmailVerified:  data.IsEmailVerified,
		IsMobileVerified: data.IsMobileVerified,
		Role:             entity.Role(data.Role),
		ProfileImage:     data.ProfileImage,
		RewardPoints:     data.RewardPoints,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	return &model.UserModel{
		ID:               data.ID,
		Username:         nullable(data.Username),
		Email:            nullable(data.Email),
		MobileNumber:     nullable(data.MobileNumber),
		PasswordHash:     nullable(data.PasswordHash),
		Provider:         data.Provider.String(),
		ExternalID:       nullable(data.ExternalID),
		IsEmailVerified:  data.IsEmailVerified,
		IsMobileVerified: data.IsMobileVerified,
		Role:             role.String(),
		ProfileImage:     data.ProfileImage,
		RewardPoints:     data.RewardPoints,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// nullable stores empty strings as NULL so optional unique columns do not collide.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
