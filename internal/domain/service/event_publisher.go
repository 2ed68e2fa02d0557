package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher fans order events out to every connected realtime client.
// Delivery is best effort and there is no replay.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
