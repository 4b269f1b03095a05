package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", s.Host)
	assert.Equal(t, 5000, s.Port)
	assert.Equal(t, "routes.txt", s.RoutesFile)
	assert.Equal(t, 32768, s.MaxMetric)
	assert.Equal(t, 10000, s.CacheCapacity)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_CAPACITY", "500")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", s.Host)
	assert.Equal(t, 8080, s.Port)
	assert.Equal(t, 500, s.CacheCapacity)
}

func TestAddr(t *testing.T) {
	s := Settings{Host: "0.0.0.0", Port: 5000}
	assert.Equal(t, "0.0.0.0:5000", s.Addr())
}
