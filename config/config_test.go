package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "NODE_ENV", "ENVIRONMENT", "SERVICE_NAME", "SERVICE_VERSION",
		"LOG_DIR", "ALLOWED_ORIGINS", "LOG_KAFKA_BROKERS", "LOG_KAFKA_TOPIC", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, EnvironmentDevelopment, cfg.Environment)
	assert.Equal(t, "gravity-ai-api", cfg.ServiceName)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfigFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("LOG_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.MetricsEnabled)
}

func TestNodeEnvTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())

	t.Setenv("NODE_ENV", "staging")
	cfg, err = NewConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
}

func TestNewConfigRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	clearEnv(t)
	t.Setenv("PORT", "http")
	_, err = NewConfig()
	require.Error(t, err)
}
