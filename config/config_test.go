package config_test

import (
	"testing"

	"github.com/NikQuila/website-gocar-sub000/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("BOOKING_SESSION_TTL_SECONDS", "900")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 900, cfg.Booking.SessionTTLSeconds)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_URL, JWT_ACCESS_SECRET")

	cfg.Backend.URL = "https://backend.gocar.cl"
	cfg.JWT.AccessSecret = "secret"

	assert.NoError(t, cfg.Validate())
}
