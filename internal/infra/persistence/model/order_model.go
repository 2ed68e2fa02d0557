package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRecord is one priced line stored inside the order row.
type OrderItemRecord struct {
	ProductID    uuid.UUID       `json:"productId"`
	SubProductID *uuid.UUID      `json:"subProductId,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// OrderModel mirrors the 'orders' table. Items are a jsonb snapshot taken at checkout.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID         string            `gorm:"type:varchar(16);not null;uniqueIndex:uq_orders_order_id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index:idx_orders_user_id;uniqueIndex:uq_orders_user_idempotency_key,priority:1"`
	IdempotencyKey  *string           `gorm:"type:varchar(128);uniqueIndex:uq_orders_user_idempotency_key,priority:2"`
	BillingName     string            `gorm:"type:varchar(255);not null"`
	BillingPhone    string            `gorm:"type:varchar(32);not null"`
	BillingEmail    string            `gorm:"type:varchar(255)"`
	PaymentMethod   string            `gorm:"type:varchar(20);not null"`
	BkashNumber     string            `gorm:"type:varchar(32)"`
	BkashTxnID      string            `gorm:"type:varchar(64)"`
	NagadNumber     string            `gorm:"type:varchar(32)"`
	UpayNumber      string            `gorm:"type:varchar(32)"`
	Items           []OrderItemRecord `gorm:"type:jsonb;serializer:json;not null"`
	TotalAmount     decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Status          string            `gorm:"type:varchar(20);not null;index:idx_orders_status"`
	RejectionReason string            `gorm:"type:text;not null"`
	CreatedAt       time.Time         `gorm:"index:idx_orders_created_at"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
