package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
database:
  host: db.internal
cache:
  ttl: 0s
feed:
  refresh_interval: 1m
`), 0o600))

	v, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, time.Duration(0), cfg.Cache.TTL)
	assert.Equal(t, time.Minute, cfg.Feed.RefreshInterval)

	// untouched keys keep their defaults
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "events.changed", cfg.RabbitMQ.QueueName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("VIBECHECK_DATABASE_HOST", "env-db")
	t.Setenv("VIBECHECK_AUTH_JWT_SECRET", "s3cret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  host: file-db\n"), 0o600))

	v, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestAddresses(t *testing.T) {
	s := ServerConfig{Host: "", Port: "8080"}
	assert.Equal(t, ":8080", s.Address())

	r := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", r.Address())
}
