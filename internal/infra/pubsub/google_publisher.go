package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/infra/realtime"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// GooglePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub.
// Events of one order share an ordering key so the relay sees them in order.
type GooglePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (*GooglePubSubPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &GooglePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishOrderEvent publishes an event and waits for the server acknowledgement.
func (p *GooglePubSubPublisher) PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	data, err := realtime.EncodeOrderEvent(event)
	if err != nil {
		return err
	}

	msg := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event": string(event.Type),
		},
	}
	if event.Order != nil {
		msg.OrderingKey = event.Order.OrderID
		msg.Attributes["order_id"] = event.Order.OrderID
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		if msg.OrderingKey != "" {
			// A failed publish pauses the key until resumed.
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Relay returns a relay receiving from subscriptionID into hub.
func (p *GooglePubSubPublisher) Relay(subscriptionID string, hub *realtime.Hub) relay {
	subscriber := p.client.Subscriber(subscriptionID)
	subscriber.ReceiveSettings.NumGoroutines = 1

	return &googleRelay{
		subscriber: subscriber,
		hub:        hub,
		logger:     p.logger,
	}
}

// Close releases Pub/Sub client resources
func (p *GooglePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

type googleRelay struct {
	subscriber *pubsub.Subscriber
	hub        *realtime.Hub
	logger     *slog.Logger
}

// Run receives until ctx is cancelled. Messages are acked once queued on the hub.
func (r *googleRelay) Run(ctx context.Context) {
	err := r.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if err := r.hub.Broadcast(ctx, msg.Data); err != nil {
			r.logger.Warn("[GooglePubSub] Failed to relay event", slog.Any("error", err))
			msg.Nack()

			return
		}
		msg.Ack()
	})
	if err != nil && ctx.Err() == nil {
		r.logger.Error("[GooglePubSub] Relay stopped", slog.Any("error", err))
	}
}
