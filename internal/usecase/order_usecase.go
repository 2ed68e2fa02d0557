package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// CartItemInput references a catalog entry. Prices are never taken from the client.
type CartItemInput struct {
	ProductID    uuid.UUID  `json:"productId" validate:"required"`
	SubProductID *uuid.UUID `json:"subProductId"`
	Quantity     int        `json:"quantity"`
}

// BillingInput is the checkout contact and payment proof.
type BillingInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PaymentMethod string `json:"paymentMethod"`
	BkashNumber   string `json:"bkashNumber"`
	BkashTxnID    string `json:"bkashTxnId"`
	NagadNumber   string `json:"nagadNumber"`
	UpayNumber    string `json:"upayNumber"`
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	UserID         uuid.UUID
	Cart           []CartItemInput
	Billing        BillingInput
	IdempotencyKey string
}

// SetOrderStatusInput moves an order to a new status.
type SetOrderStatusInput struct {
	OrderID         string
	Status          entity.OrderStatusValue
	RejectionReason string
}

// Requester identifies who is asking, for ownership checks.
type Requester struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the requester holds the admin role.
func (r Requester) IsAdmin() bool {
	return r.Role == entity.RoleAdmin
}

// OrderListOutput is a page of orders.
type OrderListOutput struct {
	Orders []*entity.Order
	Total  int64
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	SetOrderStatus(ctx context.Context, input *SetOrderStatusInput) (*entity.Order, error)
	GetOrder(ctx context.Context, orderID string, requester Requester) (*entity.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, requester Requester, page repository.Page) (*OrderListOutput, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter, page repository.Page) (*OrderListOutput, error)
}
