//go:build integration

package pubsub

import (
	"context"
	"fmt"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/realtime"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx/fxtest"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisRelay_FansOutInOrder(t *testing.T) {
	client := setupRedis(t)
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: ProviderRedis, RedisChannel: "test-events"}}
	hub := realtime.NewHub(realtime.HubParams{Lifecycle: lc, Config: cfg, Logger: newTestLogger()})

	publisher, err := NewEventPublisher(PublisherParams{Lc: lc, Config: cfg, Logger: newTestLogger(), Hub: hub, Redis: client})
	require.NoError(t, err)

	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	conn := dialHub(t, hub)

	// Wait for the relay subscription before publishing.
	require.Eventually(t, func() bool {
		counts, err := client.PubSubNumSub(context.Background(), "test-events").Result()

		return err == nil && counts["test-events"] == 1
	}, 5*time.Second, 50*time.Millisecond)

	order := &entity.Order{OrderID: "ORDER00001", Status: entity.PendingStatus()}
	ctx := context.Background()
	require.NoError(t, publisher.PublishOrderEvent(ctx, &entity.OrderEvent{Type: entity.OrderEventCreated, Order: order}))
	require.NoError(t, publisher.PublishOrderEvent(ctx, &entity.OrderEvent{Type: entity.OrderEventStatusUpdated, Order: order}))

	assert.Equal(t, "orderCreated", readEnvelope(t, conn)["event"])
	assert.Equal(t, "orderStatusUpdated", readEnvelope(t, conn)["event"])
}
