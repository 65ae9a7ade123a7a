package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	cfg, err := LoadAppConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "sgfin.db", cfg.Store.Path)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "pdf", cfg.Report.Format)
	assert.True(t, cfg.Preparer.Preparer().IsZero())

	assert.Equal(t, cfg, DefaultAppConfig())
}

func TestLoadAppConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sgfin.yaml")
	content := `
server:
  address: ":9090"
  cors_origins: ["https://example.com"]
logging:
  level: debug
  format: json
store:
  driver: memory
cache:
  driver: redis
  redis_addr: "redis:6379"
  ttl: 15m
preparer:
  name: Jane Tan
  cea_number: R012345A
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)

	p := cfg.Preparer.Preparer()
	assert.Equal(t, "Jane Tan", p.Name)
	assert.Equal(t, "R012345A", p.CEANumber)
}

func TestLoadAppConfig_EnvOverride(t *testing.T) {
	t.Setenv("SGFIN_SERVER_ADDRESS", ":7070")
	t.Setenv("SGFIN_STORE_DRIVER", "memory")
	t.Setenv("SGFIN_PREPARER_NAME", "Env Agent")

	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "Env Agent", cfg.Preparer.Name)
}

func TestLoadAppConfig_Invalid(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading config file")

	t.Setenv("SGFIN_CACHE_DRIVER", "memcached")
	_, err = LoadAppConfig("")
	assert.ErrorContains(t, err, "invalid cache driver: memcached")
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"store driver", func(c *AppConfig) { c.Store.Driver = "postgres" }, "invalid store driver"},
		{"sqlite path", func(c *AppConfig) { c.Store.Path = "" }, "store path is required"},
		{"negative ttl", func(c *AppConfig) { c.Cache.TTL = -time.Second }, "cache ttl cannot be negative"},
		{"log format", func(c *AppConfig) { c.Logging.Format = "xml" }, "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAppConfig()
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
