package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// constraintFields maps unique index names onto the logical field reported to callers.
var constraintFields = map[string]string{
	"uq_users_username":              "username",
	"uq_users_email":                 "email",
	"uq_users_mobile_number":         "mobileNumber",
	"uq_users_external_id":           "externalId",
	"uq_orders_order_id":             "orderId",
	"uq_orders_user_idempotency_key": "idempotencyKey",
	"uq_products_title":              "title",
	"uq_redeem_codes_code":           "code",
}

// checkFields maps check constraints onto the field that violated them.
var checkFields = map[string]string{
	"chk_users_contact":       "email",
	"chk_users_reward_points": "rewardPoints",
	"chk_reviews_rating":      "rating",
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// uniqueViolation reports the field behind a unique index violation.
func uniqueViolation(err error) (*repository.UniqueViolationError, bool) {
	pgErr, ok := asPgError(err)
	if !ok || pgErr.Code != pgUniqueViolation {
		return nil, false
	}

	field, known := constraintFields[pgErr.ConstraintName]
	if !known {
		field = pgErr.ConstraintName
	}

	return &repository.UniqueViolationError{Field: field, Err: err}, true
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// translateError converts a gorm/pgx failure into the repository contract.
// notFound is returned for gorm.ErrRecordNotFound when set.
func translateError(err error, notFound error, details string) error {
	if err == nil {
		return nil
	}

	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	if isTimeout(err) {
		return errors.Wrap(repository.ErrStorageTimeout, details)
	}

	if violation, ok := uniqueViolation(err); ok {
		return violation
	}

	if pgErr, ok := asPgError(err); ok && pgErr.Code == pgCheckViolation {
		if field, known := checkFields[pgErr.ConstraintName]; known {
			return domainerrors.NewValidationError(field, pgErr.Message)
		}
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
