// Package idempotency dedupes repeated order submissions inside a time window.
package idempotency

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix     = "storefront:idempotency:"
	pendingMarker = "pending"
	donePrefix    = "done:"
	// reserveAttempts covers a key expiring between SETNX and GET.
	reserveAttempts = 2
)

// redisStore keeps one key per reservation: "pending" while the request runs,
// "done:<result>" once it finished. Both expire after the window.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by client.
func NewRedisStore(client *redis.Client) service.IdempotencyStore {
	return &redisStore{client: client}
}

func (s *redisStore) Reserve(ctx context.Context, key string, window time.Duration) (service.ReservationState, string, error) {
	redisKey := keyPrefix + key

	for range reserveAttempts {
		acquired, err := s.client.SetNX(ctx, redisKey, pendingMarker, window).Result()
		if err != nil {
			return service.ReservationAcquired, "", errors.Wrap(err, "failed to reserve idempotency key")
		}
		if acquired {
			return service.ReservationAcquired, "", nil
		}

		value, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return service.ReservationAcquired, "", errors.Wrap(err, "failed to read idempotency key")
		}

		if result, done := strings.CutPrefix(value, donePrefix); done {
			return service.ReservationCompleted, result, nil
		}

		return service.ReservationInFlight, "", nil
	}

	return service.ReservationInFlight, "", nil
}

func (s *redisStore) Complete(ctx context.Context, key, result string, window time.Duration) error {
	if err := s.client.Set(ctx, keyPrefix+key, donePrefix+result, window).Err(); err != nil {
		return errors.Wrap(err, "failed to complete idempotency key")
	}

	return nil
}

func (s *redisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}

// noopStore always grants the reservation. Duplicates then fall through to the
// ledger's unique (user, key) index.
type noopStore struct{}

func (noopStore) Reserve(context.Context, string, time.Duration) (service.ReservationState, string, error) {
	return service.ReservationAcquired, "", nil
}

func (noopStore) Complete(context.Context, string, string, time.Duration) error { return nil }

func (noopStore) Release(context.Context, string) error { return nil }

// StoreParams holds dependencies for the store, injected by Fx
type StoreParams struct {
	fx.In

	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewStore picks the redis store when a client is available.
func NewStore(params StoreParams) service.IdempotencyStore {
	if params.Redis == nil {
		params.Logger.Info("Idempotency window disabled, relying on the order ledger index")

		return noopStore{}
	}

	return NewRedisStore(params.Redis)
}
