package realtime

import (
	"encoding/json"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Envelope is the frame every client receives.
type Envelope struct {
	Event     entity.OrderEventType `json:"event"`
	Data      *OrderPayload         `json:"data"`
	Timestamp time.Time             `json:"timestamp"`
}

// OrderItemPayload is one priced order line.
type OrderItemPayload struct {
	ProductID    uuid.UUID       `json:"productId"`
	SubProductID *uuid.UUID      `json:"subProductId,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// OrderPayload is the public JSON shape of an order, shared by the REST API and the event stream.
type OrderPayload struct {
	InternalID      uuid.UUID          `json:"internalId"`
	OrderID         string             `json:"orderId"`
	UserID          uuid.UUID          `json:"userId"`
	Name            string             `json:"name"`
	Phone           string             `json:"phone"`
	Email           string             `json:"email,omitempty"`
	PaymentMethod   string             `json:"paymentMethod"`
	BkashNumber     string             `json:"bkashNumber,omitempty"`
	BkashTxnID      string             `json:"bkashTxnId,omitempty"`
	NagadNumber     string             `json:"nagadNumber,omitempty"`
	UpayNumber      string             `json:"upayNumber,omitempty"`
	Products        []OrderItemPayload `json:"products"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          string             `json:"status"`
	RejectionReason string             `json:"rejectionReason"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// NewOrderPayload flattens order for the wire.
func NewOrderPayload(order *entity.Order) *OrderPayload {
	if order == nil {
		return nil
	}

	products := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		products = append(products, OrderItemPayload{
			ProductID:    item.ProductID,
			SubProductID: item.SubProductID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			Price:        item.UnitPrice,
		})
	}

	payload := &OrderPayload{
		InternalID:      order.ID,
		OrderID:         order.OrderID,
		UserID:          order.UserID,
		Name:            order.Billing.Name,
		Phone:           order.Billing.Phone,
		Email:           order.Billing.Email,
		Products:        products,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status.Value.String(),
		RejectionReason: order.Status.RejectionReason,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	if order.Payment != nil {
		fields := order.Payment.Fields()
		payload.PaymentMethod = order.Payment.Method().String()
		payload.BkashNumber = fields.BkashNumber
		payload.BkashTxnID = fields.BkashTxnID
		payload.NagadNumber = fields.NagadNumber
		payload.UpayNumber = fields.UpayNumber
	}

	return payload
}

// EncodeOrderEvent renders event as a JSON frame.
func EncodeOrderEvent(event *entity.OrderEvent) ([]byte, error) {
	timestamp := event.OccurredAt
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(Envelope{
		Event:     event.Type,
		Data:      NewOrderPayload(event.Order),
		Timestamp: timestamp,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	return data, nil
}
