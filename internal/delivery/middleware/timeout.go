package middleware

import (
	"context"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
)

// TimeoutMiddleware bounds the context handed to use cases. Websocket upgrades are long lived and skipped.
type TimeoutMiddleware struct {
	timeout time.Duration
}

// NewTimeoutMiddleware creates the middleware from http.timeouts.requestTimeout
func NewTimeoutMiddleware(cfg *config.Config) *TimeoutMiddleware {
	return &TimeoutMiddleware{timeout: cfg.HTTP.Timeouts.RequestTimeout}
}

// Process attaches the deadline to the request context
func (m *TimeoutMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.timeout <= 0 || c.IsWebSocket() {
			return next(c)
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), m.timeout)
		defer cancel()
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
