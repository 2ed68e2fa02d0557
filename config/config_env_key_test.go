package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"redisChannel": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"mail": map[string]any{
			"appBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_REDISCHANNEL", want: "pubsub.redisChannel"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "MAIL_APPBASEURL", want: "mail.appBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, "local", cfg.PubSub.Provider)
	assert.Equal(t, 10, cfg.Order.CodeLength)
	assert.Equal(t, defaultOrderCodeAttempts, cfg.Order.MaxCodeAttempts)
	assert.Equal(t, defaultIdempotencyWindow, cfg.Order.IdempotencyWindow)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, defaultStorageTimeout, cfg.Timeouts.Storage)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{SessionTTL: 2 * time.Hour, MinPasswordLength: 10},
		Order: &OrderConfig{CodeLength: 12, MaxCodeAttempts: 3, IdempotencyWindow: time.Minute},
	}

	applyDefaults(cfg)

	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 12, cfg.Order.CodeLength)
	assert.Equal(t, 3, cfg.Order.MaxCodeAttempts)
	assert.Equal(t, time.Minute, cfg.Order.IdempotencyWindow)
}
