package config_test

import (
	"testing"
	"time"

	"github.com/limbo/placebetween/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.APIAddress)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 19, cfg.NightStartHour)
	assert.Equal(t, 6, cfg.DayStartHour)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PB_BACKEND_URL", "https://api.example.test")
	t.Setenv("PB_STORE_DRIVER", "postgres")
	t.Setenv("PB_REMOTE_TIMEOUT", "3s")
	t.Setenv("PB_TIMEZONE", "UTC")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.BackendURL)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PB_NIGHT_START_HOUR", "late")
	_, err := config.Load()
	assert.Error(t, err)
}
