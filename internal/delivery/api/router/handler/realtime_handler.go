package handler

import (
	"log/slog"

	"storefront/internal/infra/realtime"

	"github.com/labstack/echo/v4"
)

// RealtimeHandler upgrades clients onto the order event stream.
type RealtimeHandler struct {
	hub    *realtime.Hub
	logger *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(hub *realtime.Hub, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, logger: logger}
}

// Subscribe upgrades the connection. The upgrader has already answered the client on failure.
func (h *RealtimeHandler) Subscribe(c echo.Context) error {
	if err := h.hub.ServeWS(c.Response(), c.Request()); err != nil {
		h.logger.Warn("Websocket upgrade failed",
			slog.String("remote_ip", c.RealIP()),
			slog.Any("error", err))
	}

	return nil
}
