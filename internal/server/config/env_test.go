package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("IDP_GRPC_ADDR", ":6000")
	t.Setenv("IDP_RETRY_MIGRATIONS", "false")
	t.Setenv("IDP_RETRY_DELAY", "250ms")
	t.Setenv("IDP_REDIS_DB", "3")
	t.Setenv("IDP_GOOGLE_CLIENT_ID", "google-id")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":6000", c.EndpointAddrGRPC)
	assert.False(t, c.RetryMigrations)
	assert.Equal(t, 250*time.Millisecond, c.RetryDelay)
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, "google-id", c.GoogleClientID)

	// not set in the environment
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
}

func TestParseEnv_InvalidValuePanics(t *testing.T) {
	t.Setenv("IDP_REDIS_DB", "three")

	var c Config
	require.Panics(t, func() { parseEnv(&c) })
}
