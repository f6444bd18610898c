package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, "rtid", cfg.RefreshTokenCookieName)
	assert.Equal(t, "/api/v1/auth", cfg.RefreshTokenCookiePath)
	assert.Equal(t, 3*time.Second, cfg.RemoteReadTimeout)
	assert.Equal(t, 1024, cfg.StoreCacheSize)
	assert.Equal(t, 30*time.Minute, cfg.StoreCacheTTL)
	assert.Equal(t, "ledger", cfg.AMQPExchange)
	assert.Equal(t, "ledger.events", cfg.AMQPQueue)
	assert.Equal(t, "5-M", cfg.AuthRateLimit)
	assert.Empty(t, cfg.MigrationsPath)
	assert.Empty(t, cfg.RedisURL)
	assert.False(t, cfg.IsProduction)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("PORT", "9090")
	v.Set("IS_PRODUCTION", true)
	v.Set("REMOTE_READ_TIMEOUT", "750ms")
	v.Set("STORE_CACHE_SIZE", 16)
	v.Set("REDIS_URL", "redis://localhost:6379/0")

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 750*time.Millisecond, cfg.RemoteReadTimeout)
	assert.Equal(t, 16, cfg.StoreCacheSize)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("JWT_EXPIRY_DURATION", "soon")
	v.Set("REMOTE_READ_TIMEOUT", "-1s")
	v.Set("STORE_CACHE_SIZE", 0)

	cfg := fromViper(v)

	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 3*time.Second, cfg.RemoteReadTimeout)
	assert.Equal(t, 1024, cfg.StoreCacheSize)
}
