package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 24, cfg.JWT.ExpHours)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Empty(t, cfg.Redis.Addr, "throttling is off unless redis is configured")
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
db:
  driver: mysql
  name: journal
jwt:
  secret: super-secret
  exp_hours: 2
redis:
  addr: 127.0.0.1:6379
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "mysql", cfg.DB.Driver)
	require.Equal(t, "journal", cfg.DB.Name)
	require.Equal(t, "super-secret", cfg.JWT.Secret)
	require.Equal(t, 2, cfg.JWT.ExpHours)
	require.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	// Untouched keys keep their defaults.
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 10, cfg.Redis.LoginMaxAttempts)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
