package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_LinkExternal(t *testing.T) {
	user := &User{Email: "jane@example.com", Provider: ProviderTypeLocal, PasswordHash: "hashed"}

	changed := user.LinkExternal(ProviderTypeGoogle, "sub-1", " Jane ", "https://img.example.com/a.png")

	assert.True(t, changed)
	assert.Equal(t, ProviderTypeGoogle, user.Provider)
	assert.Equal(t, "sub-1", user.ExternalID)
	assert.True(t, user.IsEmailVerified)
	assert.Equal(t, "Jane", user.Username)
	assert.Equal(t, "https://img.example.com/a.png", user.ProfileImage)

	assert.False(t, user.LinkExternal(ProviderTypeGoogle, "sub-1", "Other", ""))
	assert.Equal(t, "Jane", user.Username)
}

func TestUser_Sanitized(t *testing.T) {
	user := &User{Username: "jane", PasswordHash: "hashed"}

	clean := user.Sanitized()

	assert.Empty(t, clean.PasswordHash)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.True(t, user.HasPassword())
	assert.False(t, clean.HasContact())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.True(t, Roles{RoleUser, RoleAdmin}.Contains(RoleAdmin))
}
