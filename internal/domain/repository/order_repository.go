package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the order code.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status entity.OrderStatusValue
	UserID *uuid.UUID
}

// OrderRepository persists the order ledger. Orders are never deleted; only the
// status changes after creation.
type OrderRepository interface {
	// Create inserts order. A taken order code yields *UniqueViolationError{Field: "orderId"}.
	Create(ctx context.Context, order *entity.Order) error
	FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error)
	FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error)
	List(ctx context.Context, filter OrderFilter, page Page) ([]*entity.Order, int64, error)
	// UpdateStatus replaces the status and returns the updated order.
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error)
}
