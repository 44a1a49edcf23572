package config_test

import (
	"testing"
	"time"

	"github.com/finbooks/ledger/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "ledger.transaction_completed", cfg.Kafka.Topic)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://ledger:secret@db:5432/ledger")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "postgres://ledger:secret@db:5432/ledger", cfg.DB.Url)
	assert.Len(t, cfg.Kafka.Brokers, 2)
}
