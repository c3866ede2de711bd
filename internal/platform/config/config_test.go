package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "memory")
	t.Setenv("PORT", "")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DBTypeMemory, cfg.DBType)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 500, cfg.MongoOpTimeoutMs)
}

func TestLoadMongoNeedsURI(t *testing.T) {
	t.Setenv("DB_TYPE", "mongo")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDBType(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "postgres")
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvAsInt("SOME_INT", 7))
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("SOME_INT", 7))
}
