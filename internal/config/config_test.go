package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every other field has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, 24*time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, Players{First: "Player 1", Second: "Player 2"}, conf.Players)
	})

	t.Run("Reads every section", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: info
http-port: "8080"
storage: redis
session-ttl: 30m
redis:
  host: cache
  port: "6380"
players:
  first: Alice
  second: Bob
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.SessionTTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, Players{First: "Alice", Second: "Bob"}, conf.Players)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: postgres\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("Rejects missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}

func TestLoadEnv(t *testing.T) {
	// Given: configuration in the environment
	t.Setenv("STORAGE", StorageMemory)
	t.Setenv("PLAYER_FIRST", "Alice")
	t.Setenv("SESSION_TTL", "1h")

	// When: the config is read from the environment
	conf, err := LoadEnv()

	// Then: the environment values are used
	require.NoError(t, err)
	assert.Equal(t, "Alice", conf.Players.First)
	assert.Equal(t, "Player 2", conf.Players.Second)
	assert.Equal(t, time.Hour, conf.SessionTTL)
}
