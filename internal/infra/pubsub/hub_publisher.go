package pubsub

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/realtime"
)

// hubPublisher queues events straight onto the in-process hub. Suitable for a single instance.
type hubPublisher struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewHubPublisher creates a publisher that feeds hub directly.
func NewHubPublisher(hub *realtime.Hub, logger *slog.Logger) service.EventPublisher {
	return &hubPublisher{hub: hub, logger: logger}
}

func (p *hubPublisher) PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	data, err := realtime.EncodeOrderEvent(event)
	if err != nil {
		return err
	}

	if err := p.hub.Broadcast(ctx, data); err != nil {
		return err
	}

	p.logger.Debug("[LocalPubSub] Event queued",
		slog.String("event", string(event.Type)),
		slog.Int("clients", p.hub.ClientCount()),
	)

	return nil
}

func (p *hubPublisher) Close() error {
	return nil
}
