package postgres

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	notFound := errors.New("thing not found")

	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, got error)
	}{
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			check: func(t *testing.T, got error) {
				assert.Equal(t, notFound, got)
			},
		},
		{
			name: "deadline exceeded",
			err:  errors.Wrap(context.DeadlineExceeded, "query"),
			check: func(t *testing.T, got error) {
				assert.True(t, errors.Is(got, repository.ErrStorageTimeout))
			},
		},
		{
			name: "known unique index",
			err:  &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_users_mobile_number"},
			check: func(t *testing.T, got error) {
				violation, ok := repository.AsUniqueViolation(got)
				require.True(t, ok)
				assert.Equal(t, "mobileNumber", violation.Field)
			},
		},
		{
			name: "check constraint",
			err:  &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "chk_reviews_rating", Message: "rating out of range"},
			check: func(t *testing.T, got error) {
				var validation *domainerrors.ValidationError
				require.ErrorAs(t, got, &validation)
				assert.Equal(t, "rating", validation.Field())
			},
		},
		{
			name: "anything else",
			err:  errors.New("connection reset"),
			check: func(t *testing.T, got error) {
				var appErr domainerrors.AppError
				assert.ErrorAs(t, got, &appErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, translateError(tt.err, notFound, "op"))
		})
	}

	assert.NoError(t, translateError(nil, notFound, "op"))
}
