package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_PATH_STYLE", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("S3_BUCKET", "files")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.False(t, cfg.S3PathStyle)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.S3Enabled())
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("NOTIFY_POLL_INTERVAL", "soon")
	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.NotifyPollInterval)
}

func TestValidate_DevSecretRefusedInProduction(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "production")
	assert.ErrorIs(t, Load().Validate(), ErrInsecureJWTSecret)

	t.Setenv("APP_ENV", "development")
	require.NoError(t, Load().Validate())

	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "9f4c1e0b7a2d4c8e")
	require.NoError(t, Load().Validate())
}
