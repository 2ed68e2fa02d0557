// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the sign-in method that owns an account.
type ProviderType string

const (
	// ProviderTypeNone marks an account created before any provider was recorded.
	ProviderTypeNone ProviderType = ""
	// ProviderTypeLocal is the password based sign-in.
	ProviderTypeLocal ProviderType = "local"
	// ProviderTypeGoogle is the external OAuth sign-in.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsExternal reports whether the provider is an external identity provider.
func (p ProviderType) IsExternal() bool {
	return p == ProviderTypeGoogle
}

// User is a storefront account. Email, MobileNumber, Username and ExternalID are
// each optional but unique when present; at least one of Email or MobileNumber is set.
type User struct {
	ID               uuid.UUID
	Username         string
	Email            string
	MobileNumber     string
	PasswordHash     string // only set for local accounts
	Provider         ProviderType
	ExternalID       string // provider subject, only set for external accounts
	IsEmailVerified  bool
	IsMobileVerified bool
	Role             Role
	ProfileImage     string
	RewardPoints     int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// HasContact reports whether the account carries an email or a mobile number.
func (u *User) HasContact() bool {
	return u.Email != "" || u.MobileNumber != ""
}

// LinkExternal upgrades the account to the external provider. Profile fields are
// only backfilled when empty. It reports whether anything changed.
func (u *User) LinkExternal(provider ProviderType, externalID, displayName, avatarURL string) bool {
	if u.Provider == provider && u.ExternalID == externalID && u.IsEmailVerified {
		return false
	}

	u.Provider = provider
	u.ExternalID = externalID
	u.IsEmailVerified = true
	if u.Username == "" {
		u.Username = strings.TrimSpace(displayName)
	}
	if u.ProfileImage == "" {
		u.ProfileImage = avatarURL
	}

	return true
}

// Sanitized returns a copy without credential material.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""

	return &clone
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeMobile trims a mobile number.
func NormalizeMobile(mobile string) string {
	return strings.TrimSpace(mobile)
}
