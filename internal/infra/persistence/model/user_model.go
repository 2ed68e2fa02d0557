// Package model holds the GORM persistence models. They never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Optional identity columns are nullable so
// their unique indexes only apply to accounts that actually carry the value.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username         *string   `gorm:"type:varchar(100);uniqueIndex:uq_users_username"`
	Email            *string   `gorm:"type:varchar(255);uniqueIndex:uq_users_email;check:chk_users_contact,email IS NOT NULL OR mobile_number IS NOT NULL"`
	MobileNumber     *string   `gorm:"type:varchar(32);uniqueIndex:uq_users_mobile_number"`
	PasswordHash     *string   `gorm:"type:varchar(255)"`
	Provider         string    `gorm:"type:varchar(20);not null;default:''"`
	ExternalID       *string   `gorm:"type:varchar(255);uniqueIndex:uq_users_external_id"`
	IsEmailVerified  bool      `gorm:"not null;default:false"`
	IsMobileVerified bool      `gorm:"not null;default:false"`
	Role             string    `gorm:"type:varchar(20);not null;default:'user'"`
	ProfileImage     string    `gorm:"type:text"`
	RewardPoints     int       `gorm:"not null;default:0;check:chk_users_reward_points,reward_points >= 0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
