package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestLoadPoolSizesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "40")
	t.Setenv("DB_MIN_CONNS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(40), cfg.Database.MaxConns)
	assert.Equal(t, int32(10), cfg.Database.MinConns)
}

func TestLoadRejectsInvertedPoolSizes(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "8")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsMalformedPoolSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "many")

	_, err := Load()
	require.Error(t, err)
}
