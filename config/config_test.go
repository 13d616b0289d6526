package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/charile1/golf-reservation/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with required secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, int32(10), cfg.Database.MaxConns)
		assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
		assert.Equal(t, 3*time.Second, cfg.Redis.DialTimeout)
		assert.Equal(t, 24*time.Hour, cfg.Toss.DedupTTL)
		assert.True(t, cfg.Ledger.TrackMargin)
		assert.False(t, cfg.Ledger.RetryEnabled)
		assert.Equal(t, 5, cfg.Ledger.RetryMaxAttempts)
		assert.False(t, cfg.Aligo.Configured())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("TOSS_WEBHOOK_SECRET", "whsec")
		t.Setenv("LEDGER_TRACK_MARGIN", "false")
		t.Setenv("LEDGER_RETRY_ENABLED", "true")
		t.Setenv("ALIGO_API_KEY", "k")
		t.Setenv("ALIGO_USER_ID", "u")
		t.Setenv("ALIGO_SENDER_PHONE", "0212345678")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "whsec", cfg.Toss.WebhookSecret)
		assert.False(t, cfg.Ledger.TrackMargin)
		assert.True(t, cfg.Ledger.RetryEnabled)
		assert.True(t, cfg.Aligo.Configured())
	})

	t.Run("section prefix is required", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "9999")
		t.Setenv("HOST", "elsewhere")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, "localhost", cfg.Redis.Host)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}
