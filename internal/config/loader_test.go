package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharaths07/sportsv1.1-sub000/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: match-tracker
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5

redis:
  addr: 127.0.0.1:6380
  key_prefix: mt-test

notifications:
  enabled: true
  match_start: false
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")
	t.Setenv("APP_REDIS_PASSWORD", "redispass")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)
	assert.Equal(t, "rfc3339", cfg.Logger.TimeFormat)
	assert.Equal(t, "127.0.0.1:6380", cfg.Redis.Addr)
	assert.Equal(t, "redispass", cfg.Redis.Password)
	assert.Equal(t, "mt-test", cfg.Redis.KeyPrefix)
	assert.True(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Notifications.MatchStart)
	assert.True(t, cfg.Notifications.MatchResult, "defaults fill keys absent from the file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "app:\n  port: 9000\n")
	t.Setenv("APP_POSTGRES_USER", "u")
	t.Setenv("APP_POSTGRES_PASSWORD", "p")
	t.Setenv("APP_POSTGRES_DB", "d")
	t.Setenv("APP_APP_PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.App.Port)
}

func TestLoad_MissingRequiredEnvFails(t *testing.T) {
	path := writeTempConfig(t, "postgres:\n  host: localhost\n")
	t.Setenv("APP_POSTGRES_USER", "")
	t.Setenv("APP_POSTGRES_PASSWORD", "")
	t.Setenv("APP_POSTGRES_DB", "")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DotEnvFillsSecrets(t *testing.T) {
	path := writeTempConfig(t, "app:\n  cors_origins: [\"https://scores.example.com\"]\n")
	for _, key := range []string{"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB"} {
		// restore the key on cleanup; godotenv only sets absent keys
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DotEnvFile),
		[]byte("APP_POSTGRES_USER=dotuser\nAPP_POSTGRES_PASSWORD=dotpass\nAPP_POSTGRES_DB=dotdb\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dotuser", cfg.Postgres.User)
	assert.Equal(t, "dotdb", cfg.Postgres.DBName)
	assert.Equal(t, []string{"https://scores.example.com"}, cfg.App.CORSOrigins)
}
