package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckerConfig_Defaults(t *testing.T) {
	t.Setenv("PROD_ID", "")
	t.Setenv("CHECKER_BASE_URL", "")
	t.Setenv("CHECKER_LANG", "")
	t.Setenv("CHECKER_USER_AGENT", "")
	t.Setenv("NOTIFY_MESSAGE", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg := NewCheckerConfig()

	assert.Equal(t, "211992", cfg.ProdID)
	assert.Equal(t, "https://tkglobal.melon.com", cfg.BaseURL)
	assert.Equal(t, "EN", cfg.Lang)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	assert.Equal(t, "🎫 TWICE票來了！快搶！", cfg.Message)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestNewCheckerConfig_FromEnv(t *testing.T) {
	t.Setenv("PROD_ID", "123456")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg := NewCheckerConfig()

	assert.Equal(t, "123456", cfg.ProdID)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestNewSlackConfig(t *testing.T) {
	t.Setenv("SLACK_WEBHOOK", "")
	assert.Empty(t, NewSlackConfig().Webhook)

	t.Setenv("SLACK_WEBHOOK", "https://hooks.example.com/services/T/X/Y")
	t.Setenv("SLACK_USERNAME", "TWICE Ticket Bot")
	cfg := NewSlackConfig()
	assert.Equal(t, "https://hooks.example.com/services/T/X/Y", cfg.Webhook)
	assert.Equal(t, "TWICE Ticket Bot", cfg.Username)
}

func TestNewTelegramBotConfig(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("123:abc\n"), 0o600))

	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN_FILE", tokenFile)
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")

	cfg := NewTelegramBotConfig()

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, int64(-100200), cfg.ChatID)
	assert.True(t, cfg.Enabled())
}

func TestNewTelegramBotConfig_Disabled(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_TOKEN_FILE", "")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	cfg := NewTelegramBotConfig()

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Zero(t, cfg.ChatID)
	assert.False(t, cfg.Enabled())
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION", time.Minute))
}

func TestGetEnvFromFile_Missing(t *testing.T) {
	t.Setenv("TEST_SECRET_FILE", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, "fallback", getEnvFromFile("TEST_SECRET_FILE", "fallback"))
}
