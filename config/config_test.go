package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 720*time.Hour, cfg.Auth.JWTTTL)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
	assert.True(t, cfg.Auth.AllowHeaderTenant)
	assert.Equal(t, "0 0 8 * * *", cfg.Reminders.Cron)
}

func TestValidate(t *testing.T) {
	t.Run("production rejects header tenants", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost"},
			App:      AppConfig{Environment: "production"},
			Auth:     AuthConfig{AllowHeaderTenant: true},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("dsn is enough", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{DSN: "postgres://x"},
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("port required", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Host: "localhost"}}
		assert.Error(t, cfg.Validate())
	})
}
