package entity

import (
	"strings"
	"sync"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusValue is a state of the order review workflow. Every state may move to any other.
type OrderStatusValue string

const (
	OrderStatusPending  OrderStatusValue = "Pending"
	OrderStatusApproved OrderStatusValue = "Approved"
	OrderStatusRejected OrderStatusValue = "Rejected"
)

// DefaultRejectionReason is stored whenever an order is not rejected.
const DefaultRejectionReason = "N/A"

// String returns the string representation of the OrderStatusValue.
func (v OrderStatusValue) String() string {
	return string(v)
}

// IsValid checks if the status value is known.
func (v OrderStatusValue) IsValid() bool {
	switch v {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return true
	default:
		return false
	}
}

// OrderStatus pairs the state with its rejection reason.
type OrderStatus struct {
	Value           OrderStatusValue
	RejectionReason string
}

// NewOrderStatus enforces that a rejection carries a reason and that any other
// state carries DefaultRejectionReason.
func NewOrderStatus(value OrderStatusValue, reason string) (OrderStatus, error) {
	if !value.IsValid() {
		return OrderStatus{}, domainerrors.NewValidationError("status", "status must be one of Pending, Approved, Rejected")
	}

	if value != OrderStatusRejected {
		return OrderStatus{Value: value, RejectionReason: DefaultRejectionReason}, nil
	}

	reason = strings.TrimSpace(reason)
	if reason == "" || strings.EqualFold(reason, DefaultRejectionReason) {
		return OrderStatus{}, domainerrors.NewValidationError("rejectionReason", "a rejection reason is required")
	}

	return OrderStatus{Value: value, RejectionReason: reason}, nil
}

// PendingStatus is the initial state of every order.
func PendingStatus() OrderStatus {
	return OrderStatus{Value: OrderStatusPending, RejectionReason: DefaultRejectionReason}
}

var (
	billingValidatorOnce sync.Once
	billingValidator     *validator.Validate
)

func fieldValidator() *validator.Validate {
	billingValidatorOnce.Do(func() {
		billingValidator = validator.New()
	})

	return billingValidator
}

// Billing is the contact snapshot captured at checkout.
type Billing struct {
	Name  string
	Phone string
	Email string
}

// Normalize trims every field and lowercases the email.
func (b Billing) Normalize() Billing {
	return Billing{
		Name:  strings.TrimSpace(b.Name),
		Phone: strings.TrimSpace(b.Phone),
		Email: NormalizeEmail(b.Email),
	}
}

// Validate returns the first violated field.
func (b Billing) Validate() error {
	v := fieldValidator()

	if b.Name == "" {
		return domainerrors.NewValidationError("name", "name is required")
	}
	if err := v.Var(b.Phone, "len=11,number"); err != nil {
		return domainerrors.NewValidationError("phone", "phone must be exactly 11 digits")
	}
	if b.Email != "" && !IsValidEmail(b.Email) {
		return domainerrors.NewValidationError("email", "email is not valid")
	}

	return nil
}

// IsValidEmail reports whether email has a plausible address shape.
func IsValidEmail(email string) bool {
	return fieldValidator().Var(email, "required,email") == nil
}

// OrderItem is a line of the order, priced from the catalog at checkout time.
type OrderItem struct {
	ProductID    uuid.UUID
	SubProductID *uuid.UUID
	Name         string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// Subtotal returns quantity multiplied by unit price.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotal sums the subtotals of items.
func ComputeTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// Order is a purchase attempt awaiting manual payment review.
// Items and TotalAmount are a snapshot and never change after creation.
type Order struct {
	ID             uuid.UUID
	OrderID        string
	UserID         uuid.UUID
	Billing        Billing
	Payment        Payment
	Items          []OrderItem
	TotalAmount    decimal.Decimal
	Status         OrderStatus
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderEventType names a realtime order notification.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "orderCreated"
	OrderEventStatusUpdated OrderEventType = "orderStatusUpdated"
)

// OrderEvent is broadcast to every connected client.
type OrderEvent struct {
	Type       OrderEventType
	Order      *Order
	OccurredAt time.Time
}
