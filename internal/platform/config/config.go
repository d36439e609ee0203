// Package config loads and validates the service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults applied before any file or environment layer.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20
	DefaultRequestTimeout = 15 * time.Second

	DefaultDatabaseMaxOpenConns = 10
	DefaultDatabaseMaxIdleConns = 5

	// Writes per second and burst, per identity.
	DefaultRateLimitRPS   = 5.0
	DefaultRateLimitBurst = 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

const (
	envPrefix = "APP_"
	configDir = "configs"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"        validate:"required"`
	Server    ServerConfig    `koanf:"server"     validate:"required"`
	Log       LogConfig       `koanf:"log"        validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Database  DatabaseConfig  `koanf:"database"   validate:"required"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Health    HealthConfig    `koanf:"health"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure     bool    `koanf:"insecure"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig contains identity settings. With a JWT secret the acting
// identity is the verified bearer token subject; without one it is read
// from SubjectHeader as set by an upstream gateway.
type AuthConfig struct {
	SubjectHeader string        `koanf:"subject_header" validate:"required"`
	JWTSecret     string        `koanf:"jwt_secret"     validate:"omitempty,min=32"`
	Issuer        string        `koanf:"issuer"`
	Audience      string        `koanf:"audience"`
	Leeway        time.Duration `koanf:"leeway"         validate:"min=0"`
}

// TokensEnabled reports whether bearer tokens are verified.
func (a *AuthConfig) TokensEnabled() bool {
	return a.JWTSecret != ""
}

// DatabaseConfig contains storage settings.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=postgres sqlite"`
	DSN             string        `koanf:"dsn"               validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	LogLevel        string        `koanf:"log_level"         validate:"omitempty,oneof=silent error warn info"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"    validate:"min=0"`
}

// RateLimitConfig contains the per-identity write limiter settings.
type RateLimitConfig struct {
	Enabled           bool    `koanf:"enabled"`
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst             int     `koanf:"burst"               validate:"required_if=Enabled true,omitempty,min=1"`
}

// HealthConfig contains readiness check settings.
type HealthConfig struct {
	CheckTimeout time.Duration `koanf:"check_timeout" validate:"min=0"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "articles-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.insecure":      true,
		"telemetry.service_name":  "articles-service",
		"telemetry.sampling_rate": 1.0,

		"auth.subject_header": "X-User-ID",
		"auth.jwt_secret":     "",
		"auth.issuer":         "",
		"auth.audience":       "",
		"auth.leeway":         "30s",

		"database.driver":            "sqlite",
		"database.dsn":               "articles.db",
		"database.max_open_conns":    DefaultDatabaseMaxOpenConns,
		"database.max_idle_conns":    DefaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,
		"database.log_level":         "warn",
		"database.slow_threshold":    "200ms",

		"rate_limit.enabled":             false,
		"rate_limit.requests_per_second": DefaultRateLimitRPS,
		"rate_limit.burst":               DefaultRateLimitBurst,

		"health.check_timeout": "2s",
	}
}

// Load layers configuration, later layers winning: built-in defaults,
// configs/base.yaml, configs/<profile>.yaml, then APP_* environment
// variables. Missing files are skipped.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	layers := []string{"base"}
	if profile != "" {
		layers = append(layers, profile)
	}

	for _, name := range layers {
		path := filepath.Join(configDir, name+".yaml")
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading %s config: %w", name, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey(k.Keys())), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps APP_DATABASE_MAX_OPEN_CONNS onto the known key
// "database.max_open_conns". Unknown variables fall back to replacing every
// underscore with a dot.
func envKey(known []string) func(string) string {
	byEnv := make(map[string]string, len(known))
	for _, k := range known {
		byEnv[strings.ReplaceAll(k, ".", "_")] = k
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if k, ok := byEnv[name]; ok {
			return k
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
