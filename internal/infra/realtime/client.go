package realtime

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

const maxInboundMessageSize = 512

// Client is one websocket connection. The hub writes into send; WritePump drains it.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// ServeWS upgrades the request and attaches the connection to the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	client := &Client{
		ID:   xid.New().String(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.sendBuffer),
	}

	if !h.attach(client) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()

		return ErrHubStopped
	}

	go client.WritePump()
	go client.ReadPump()

	return nil
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.allowOrigins) == 0 || slices.Contains(h.allowOrigins, "*") {
		return true
	}

	origin := r.Header.Get("Origin")

	return origin == "" || slices.Contains(h.allowOrigins, origin)
}

// ReadPump keeps the read deadline alive from pongs. Clients never send
// anything meaningful; inbound frames are discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.detach(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.hub.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("Realtime client read failed",
					slog.String("clientID", c.ID),
					slog.Any("error", err))
			}

			return
		}
	}
}

// WritePump sends queued events, one frame each, and pings on an interval.
func (c *Client) WritePump() {
	pingPeriod := c.hub.pongWait * 9 / 10
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.hub.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
