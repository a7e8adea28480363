package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const minimal = `
server:
  addr: ":9090"
logger:
  engine: slog
  level: debug
gin:
  mode: test
postgres:
  host: db
  password: secret
session:
  google_client_id: client.apps.googleusercontent.com
  secret: 0123456789abcdef0123456789abcdef
  allowed_domains: ["bootcamps.tech"]
scheduler:
  interval: 5m
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, logger.DebugLevel, cfg.Logger.LogLevel())
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=bootcamp_tech sslmode=disable", cfg.Postgres.DSN())
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "bootcamp_session", cfg.Session.CookieName)
	assert.Equal(t, []string{"bootcamps.tech"}, cfg.Session.AllowedDomains)
	assert.Equal(t, "per_action", cfg.Authz.Policy)
	assert.Equal(t, "registration.confirmations", cfg.RabbitMQ.Queue)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.Interval)
	assert.False(t, cfg.Mail.Enabled())
	assert.False(t, cfg.RabbitMQ.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTHZ_POLICY", "per_session")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "per_session", cfg.Authz.Policy)
	assert.True(t, cfg.Mail.Enabled())
}

func TestLoad_ShortSecret(t *testing.T) {
	body := `
session:
  google_client_id: client
  secret: short
`
	_, err := Load(writeConfig(t, body))
	assert.ErrorIs(t, err, cleanenvport.ErrConfigValidation)
}

func TestLoad_PathFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, minimal))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoad_NoPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	_, err := Load("")
	assert.ErrorIs(t, err, cleanenvport.ErrConfigPathNotSet)
}
