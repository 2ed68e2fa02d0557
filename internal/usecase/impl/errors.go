package impl

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateStorageError maps a storage failure onto the domain taxonomy.
// Not-found sentinels are handled by callers since their meaning depends on the operation.
func translateStorageError(err error, msg string) error {
	if err == nil {
		return nil
	}

	if violation, ok := repository.AsUniqueViolation(err); ok {
		return domainerrors.NewDuplicateFieldError(violation.Field)
	}

	if errors.Is(err, repository.ErrStorageTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(domainerrors.ErrTimeout, msg)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(domainerrors.ErrInternalError, msg+": "+err.Error())
}
