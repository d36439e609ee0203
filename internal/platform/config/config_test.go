package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
// This test doesn't depend on YAML files - it only tests the defaults() function.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "articles-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimit.Burst)
	assert.True(t, cfg.Telemetry.Insecure)

	require.NoError(t, cfg.Validate(), "defaults must be a runnable configuration")
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestLoad_EnvVarMultiWordKeys tests that keys containing underscores are
// reachable from the environment.
func TestLoad_EnvVarMultiWordKeys(t *testing.T) {
	t.Setenv("APP_DATABASE_MAX_OPEN_CONNS", "3")
	t.Setenv("APP_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("APP_RATE_LIMIT_ENABLED", "true")
	t.Setenv("APP_AUTH_SUBJECT_HEADER", "X-Forwarded-User")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Auth.TokensEnabled())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "X-Forwarded-User", cfg.Auth.SubjectHeader)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 2*time.Second, cfg.Health.CheckTimeout)
	assert.Equal(t, 30*time.Second, cfg.Auth.Leeway)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "articles-service", cfg.App.Name)
}

// TestLoad_ProfileFiles tests base and profile layering from configs/.
func TestLoad_ProfileFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "base.yaml"), []byte(`
database:
  driver: postgres
  dsn: postgres://base
log:
  level: debug
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "qa.yaml"), []byte(`
database:
  dsn: postgres://qa
`), 0o600))

	t.Chdir(dir)

	cfg, err := Load("qa")
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://qa", cfg.Database.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoad_BoolEnvVar tests that boolean environment variables are parsed correctly.
func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

// TestLoad_AuthDefaults tests that identity defaults are set correctly.
func TestLoad_AuthDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "X-User-ID", cfg.Auth.SubjectHeader)
	assert.False(t, cfg.Auth.TokensEnabled())
}

// TestLoad_LogFileDefaults tests that log file defaults are set correctly.
func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/app.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

// TestLoad_TelemetryDefaults tests that telemetry defaults are set correctly.
func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "articles-service", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRate)
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "articles-service", d["app.name"])
	assert.Equal(t, "local", d["app.environment"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "sqlite", d["database.driver"])
	assert.Equal(t, DefaultRateLimitRPS, d["rate_limit.requests_per_second"])
}

func TestEnvKey(t *testing.T) {
	fn := envKey([]string{"server.port", "database.max_open_conns", "rate_limit.enabled"})

	assert.Equal(t, "server.port", fn("APP_SERVER_PORT"))
	assert.Equal(t, "database.max_open_conns", fn("APP_DATABASE_MAX_OPEN_CONNS"))
	assert.Equal(t, "rate_limit.enabled", fn("APP_RATE_LIMIT_ENABLED"))
	assert.Equal(t, "unknown.key", fn("APP_UNKNOWN_KEY"))
}
