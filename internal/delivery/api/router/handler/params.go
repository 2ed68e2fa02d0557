package handler

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListResponse is a page of items with the total match count.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// parsePage reads limit and offset query parameters.
func parsePage(c echo.Context) (repository.Page, error) {
	var page repository.Page
	if err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError(); err != nil {
		return page, domainerrors.NewValidationError("limit", "limit and offset must be integers")
	}

	return page.Normalize(), nil
}

// parseUUID reads a uuid from a path or query value named field.
func parseUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(field, field+" must be a valid id")
	}

	return id, nil
}

// parseOptionalUUID is parseUUID for optional filters.
func parseOptionalUUID(value, field string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}

	id, err := parseUUID(value, field)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
