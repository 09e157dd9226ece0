package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_URL", "https://health.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://health.example.com", cfg.AppURL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 1000, cfg.Ark.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Ark.Temperature, 0.0001)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BLUEPRINT_DB_HOST", "db")
	t.Setenv("BLUEPRINT_DB_USERNAME", "svc")
	t.Setenv("BLUEPRINT_DB_PASSWORD", "pw")
	t.Setenv("BLUEPRINT_DB_DATABASE", "hc")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "postgres://svc:pw@db:5432/hc?sslmode=disable&search_path=public", cfg.DB.DSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.SessionSecret = "short"
	assert.Error(t, cfg.Validate())

	cfg.SessionSecret = "0123456789abcdef0123456789abcdef"
	assert.NoError(t, cfg.Validate())
}

func TestFeatureToggles(t *testing.T) {
	assert.False(t, ArkConfig{APIKey: "k"}.Enabled())
	assert.True(t, ArkConfig{APIKey: "k", Model: "m"}.Enabled())
	assert.True(t, ArkConfig{AccessKey: "a", SecretKey: "s", Model: "m"}.Enabled())

	assert.False(t, SMTPConfig{Host: "smtp"}.Enabled())
	assert.Equal(t, "user@example.com", SMTPConfig{User: "user@example.com"}.Sender())

	assert.False(t, OAuthConfig{GoogleClientID: "id"}.GoogleEnabled())
}

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, (&Config{LogLevel: "DEBUG"}).Level())
	assert.Equal(t, zerolog.InfoLevel, (&Config{LogLevel: "nonsense"}).Level())
}
