// Package realtime fans order events out to connected websocket clients.
package realtime

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSendBuffer      = 64
	defaultBroadcastBuffer = 256
	defaultPongWait        = 60 * time.Second
	defaultWriteWait       = 10 * time.Second
)

// ErrHubStopped is returned when broadcasting after shutdown.
var ErrHubStopped = errors.New("realtime hub stopped")

// Hub owns the set of connected clients. A single goroutine drains the
// broadcast queue, so events reach every client in the order they were queued.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	clients    map[*Client]struct{}
	count      atomic.Int64

	sendBuffer   int
	pongWait     time.Duration
	writeWait    time.Duration
	allowOrigins []string

	stop    chan struct{}
	stopped chan struct{}
	logger  *slog.Logger
}

// HubParams defines the dependencies of the hub
type HubParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewHub builds a hub and ties its loop to the application lifecycle.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Config.Realtime, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return hub.Stop(ctx)
		},
	})

	return hub
}

func newHub(cfg *config.RealtimeConfig, logger *slog.Logger) *Hub {
	hub := &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, defaultBroadcastBuffer),
		clients:    make(map[*Client]struct{}),
		sendBuffer: defaultSendBuffer,
		pongWait:   defaultPongWait,
		writeWait:  defaultWriteWait,
		stop:       make(chan struct{}),
		stopped:    make(chan struct{}),
		logger:     logger,
	}

	if cfg != nil {
		if cfg.SendBuffer > 0 {
			hub.sendBuffer = cfg.SendBuffer
		}
		if cfg.PongWait > 0 {
			hub.pongWait = cfg.PongWait
		}
		if cfg.WriteWait > 0 {
			hub.writeWait = cfg.WriteWait
		}
		hub.allowOrigins = cfg.AllowOrigins
	}

	return hub
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	defer close(h.stopped)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug("Realtime client connected", slog.String("clientID", client.ID))

		case client := <-h.unregister:
			h.remove(client)

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// A client that cannot keep up loses the connection, not the others.
					h.logger.Warn("Realtime client too slow, dropping", slog.String("clientID", client.ID))
					h.remove(client)
				}
			}

		case <-h.stop:
			for client := range h.clients {
				h.remove(client)
			}

			return
		}
	}
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)
	h.count.Store(int64(len(h.clients)))
	h.logger.Debug("Realtime client disconnected", slog.String("clientID", client.ID))
}

// Broadcast queues message for every connected client. It blocks only while
// the queue is full.
func (h *Hub) Broadcast(ctx context.Context, message []byte) error {
	select {
	case h.broadcast <- message:
		return nil
	case <-h.stopped:
		return ErrHubStopped
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "broadcast not queued")
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Stop closes every client and waits for the loop to exit.
func (h *Hub) Stop(ctx context.Context) error {
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}

	select {
	case <-h.stopped:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "realtime hub did not stop")
	}
}

func (h *Hub) attach(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.stopped:
		return false
	}
}

func (h *Hub) detach(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}
