package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestRequestIDMiddleware(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		c, rec := newContext(req)

		err := mw.Process(func(c echo.Context) error {
			assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces oversized ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 200))
		c, rec := newContext(req)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestTimeoutMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.RequestTimeout = time.Second
	mw := NewTimeoutMiddleware(cfg)

	t.Run("sets a deadline", func(t *testing.T) {
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/orders", nil))

		err := mw.Process(func(c echo.Context) error {
			deadline, ok := c.Request().Context().Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)

			return nil
		})(c)
		require.NoError(t, err)
	})

	t.Run("skips websocket upgrades", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ws", nil)
		req.Header.Set(echo.HeaderUpgrade, "websocket")
		c, _ := newContext(req)

		err := mw.Process(func(c echo.Context) error {
			_, ok := c.Request().Context().Deadline()
			assert.False(t, ok)

			return nil
		})(c)
		require.NoError(t, err)
	})
}

func TestLoggerMiddleware_LogsServerErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())

	c, _ = newContext(httptest.NewRequest(http.MethodGet, "/boom", nil))
	err := mw.Handle(func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) })(c)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=502")
}
