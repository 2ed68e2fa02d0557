package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			SessionTTL:        time.Hour,
			MinPasswordLength: 6,
		},
		Order: &config.OrderConfig{
			CodeLength:        10,
			MaxCodeAttempts:   3,
			IdempotencyWindow: 10 * time.Minute,
		},
		Mail: &config.MailConfig{
			AppBaseURL: "https://shop.example.com/",
		},
		Cloudinary: &config.CloudinaryConfig{
			Folder: "storefront-test",
		},
		Timeouts: &config.TimeoutsConfig{
			Storage:  time.Second,
			External: time.Second,
		},
	}
}
