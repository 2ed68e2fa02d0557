// Package pubsub delivers order events to the realtime hub, either directly or
// through a broker so that every instance fans out to its own clients.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/realtime"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	ProviderLocal  = "local"
	ProviderRedis  = "redis"
	ProviderGoogle = "google"

	defaultRedisChannel = "storefront:order-events"
)

// relay forwards broker messages into the local hub until ctx is done.
type relay interface {
	Run(ctx context.Context)
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Hub    *realtime.Hub
	Redis  *redis.Client `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := ProviderLocal
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var (
		publisher service.EventPublisher
		broker    relay
	)

	switch provider {
	case ProviderLocal:
		logger.Info("Publishing order events to the in-process hub")
		publisher = NewHubPublisher(params.Hub, logger)

	case ProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be enabled for the redis pubsub provider")
		}
		channel := cfg.RedisChannel
		if channel == "" {
			channel = defaultRedisChannel
		}
		logger.Info("Publishing order events through redis", slog.String("channel", channel))

		publisher = NewRedisPublisher(params.Redis, channel, logger)
		broker = NewRedisRelay(params.Redis, channel, params.Hub, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		if cfg.SubscriptionID == "" {
			return nil, errors.New("subscription ID is required for google provider")
		}
		logger.Info("Publishing order events through Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		googlePublisher, err := NewGooglePubSubPublisher(context.Background(), cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = googlePublisher
		broker = googlePublisher.Relay(cfg.SubscriptionID, params.Hub)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	relayCtx, cancelRelay := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if broker != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					broker.Run(relayCtx)
				}()
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")
			cancelRelay()
			wg.Wait()

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
