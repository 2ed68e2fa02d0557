package postgres

import (
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserColumnValues(t *testing.T) {
	userM := fromUserDomain(&entity.User{
		ID:           uuid.New(),
		Username:     "jane",
		PasswordHash: "hashed",
		Role:         entity.RoleAdmin,
		RewardPoints: 50,
	})

	t.Run("writes only the listed columns", func(t *testing.T) {
		values, err := userColumnValues(userM, []repository.UserField{repository.UserFieldRole, repository.UserFieldMobileNumber})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"role": "admin", "mobile_number": (*string)(nil)}, values)
		assert.NotContains(t, values, "reward_points")
		assert.NotContains(t, values, "password_hash")
	})

	t.Run("no fields", func(t *testing.T) {
		values, err := userColumnValues(userM, nil)

		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := userColumnValues(userM, []repository.UserField{"rewardPoints"})

		assert.Error(t, err)
	})
}
