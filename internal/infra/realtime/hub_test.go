package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T, cfg *config.RealtimeConfig) *Hub {
	t.Helper()

	hub := newHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = hub.Stop(ctx)
	})

	return hub
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r)
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	hub := newTestHub(t, nil)
	first := dial(t, hub)
	second := dial(t, hub)

	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast(context.Background(), []byte(`{"event":"orderCreated"}`)))

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, message, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"event":"orderCreated"}`, string(message))
	}
}

func TestHub_PreservesQueueOrder(t *testing.T) {
	hub := newTestHub(t, nil)
	conn := dial(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast(context.Background(), []byte("created")))
	require.NoError(t, hub.Broadcast(context.Background(), []byte("approved")))

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, firstMsg, err := conn.ReadMessage()
	require.NoError(t, err)
	_, secondMsg, err := conn.ReadMessage()
	require.NoError(t, err)

	assert.Equal(t, "created", string(firstMsg))
	assert.Equal(t, "approved", string(secondMsg))
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := newTestHub(t, &config.RealtimeConfig{SendBuffer: 1})
	slow := &Client{ID: "slow", hub: hub, send: make(chan []byte, 1)}
	require.True(t, hub.attach(slow))

	require.NoError(t, hub.Broadcast(context.Background(), []byte("one")))
	require.NoError(t, hub.Broadcast(context.Background(), []byte("two")))

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	first, ok := <-slow.send
	assert.True(t, ok)
	assert.Equal(t, "one", string(first))
	_, ok = <-slow.send
	assert.False(t, ok, "send channel is closed once the client is dropped")
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := newTestHub(t, nil)
	conn := dial(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastAfterStop(t *testing.T) {
	hub := newHub(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	require.NoError(t, hub.Stop(context.Background()))

	// Fill the queue so the send case cannot win the select.
	for i := 0; i < defaultBroadcastBuffer; i++ {
		hub.broadcast <- nil
	}

	assert.ErrorIs(t, hub.Broadcast(context.Background(), []byte("late")), ErrHubStopped)
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	hub := newTestHub(t, &config.RealtimeConfig{AllowOrigins: []string{"https://shop.example.com"}})

	request := httptest.NewRequest(http.MethodGet, "/ws", nil)
	request.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, hub.checkOrigin(request))

	request.Header.Set("Origin", "https://shop.example.com")
	assert.True(t, hub.checkOrigin(request))
}

func TestEncodeOrderEvent(t *testing.T) {
	order := &entity.Order{
		ID:          uuid.New(),
		OrderID:     "K3J9QZ0M1A",
		Billing:     entity.Billing{Name: "Jane", Phone: "01700000000"},
		Payment:     entity.BkashPayment{AccountNumber: "01700000000", TxnID: "TX1"},
		Items:       []entity.OrderItem{{ProductID: uuid.New(), Name: "60 UC", Quantity: 2, UnitPrice: decimal.RequireFromString("99")}},
		TotalAmount: decimal.RequireFromString("198"),
		Status:      entity.PendingStatus(),
	}

	data, err := EncodeOrderEvent(&entity.OrderEvent{Type: entity.OrderEventCreated, Order: order})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "orderCreated", decoded["event"])
	assert.NotEmpty(t, decoded["timestamp"])

	payload := decoded["data"].(map[string]any)
	assert.Equal(t, "K3J9QZ0M1A", payload["orderId"])
	assert.Equal(t, "bkash", payload["paymentMethod"])
	assert.Equal(t, "198", payload["totalAmount"])
	assert.Equal(t, "N/A", payload["rejectionReason"])
	assert.NotContains(t, payload, "nagadNumber")
}
