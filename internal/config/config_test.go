package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_SIGNING_SECRET", "secret")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "xoxb-test", cfg.SlackBotToken)
		assert.Equal(t, "secret", cfg.SlackSigningSecret)
		assert.Equal(t, "./staff.db", cfg.DatabasePath)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 30*time.Second, cfg.CheckInterval)
		assert.Equal(t, 10*time.Second, cfg.SideEffectTimeout)
		assert.Equal(t, 4, cfg.SweepConcurrency)
	})

	t.Run("Should read values from an env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "SLACK_BOT_TOKEN=xoxb-file\nSLACK_SIGNING_SECRET=file-secret\nCHECK_INTERVAL=1m\nSWEEP_CONCURRENCY=0\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// godotenv never overrides variables that are already set
		for _, key := range []string{"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "CHECK_INTERVAL", "SWEEP_CONCURRENCY"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "xoxb-file", cfg.SlackBotToken)
		assert.Equal(t, time.Minute, cfg.CheckInterval)
		assert.Equal(t, 1, cfg.SweepConcurrency)
	})

	t.Run("Should fail without a bot token", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "")
		require.NoError(t, os.Unsetenv("SLACK_BOT_TOKEN"))
		t.Setenv("SLACK_SIGNING_SECRET", "secret")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})

	t.Run("Should reject a non positive check interval", func(t *testing.T) {
		t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("SLACK_SIGNING_SECRET", "secret")
		t.Setenv("CHECK_INTERVAL", "0s")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}
