package pubsub

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/realtime"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisPublisher PUBLISHes encoded events; every instance's relay feeds them to its hub.
type redisPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisPublisher creates a publisher on channel.
func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) service.EventPublisher {
	return &redisPublisher{client: client, channel: channel, logger: logger}
}

func (p *redisPublisher) PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	data, err := realtime.EncodeOrderEvent(event)
	if err != nil {
		return err
	}

	receivers, err := p.client.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return errors.Wrap(err, "failed to publish order event to redis")
	}

	p.logger.Debug("[RedisPubSub] Event published",
		slog.String("event", string(event.Type)),
		slog.Int64("instances", receivers),
	)

	return nil
}

// Close is a no-op; the shared client is closed by its own provider.
func (p *redisPublisher) Close() error {
	return nil
}

// RedisRelay subscribes to the event channel and feeds the local hub.
type RedisRelay struct {
	client  *redis.Client
	channel string
	hub     *realtime.Hub
	logger  *slog.Logger
}

// NewRedisRelay creates a relay for channel.
func NewRedisRelay(client *redis.Client, channel string, hub *realtime.Hub, logger *slog.Logger) *RedisRelay {
	return &RedisRelay{client: client, channel: channel, hub: hub, logger: logger}
}

// Run blocks until ctx is cancelled. Messages arrive in publish order and are
// queued on the hub in that order.
func (r *RedisRelay) Run(ctx context.Context) {
	sub := r.client.Subscribe(ctx, r.channel)
	defer func() {
		if err := sub.Close(); err != nil {
			r.logger.Warn("[RedisPubSub] Failed to close subscription", slog.Any("error", err))
		}
	}()

	r.logger.Info("[RedisPubSub] Relay subscribed", slog.String("channel", r.channel))

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := r.hub.Broadcast(ctx, []byte(msg.Payload)); err != nil {
				r.logger.Warn("[RedisPubSub] Failed to relay event", slog.Any("error", err))
			}
		}
	}
}
