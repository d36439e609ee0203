// Package storage implements the repository ports on top of gorm. PostgreSQL
// is the production store; SQLite backs the local profile and tests.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen/articles-service/internal/platform/logging"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// sqlitePragmas are appended to SQLite DSNs that do not set any pragma.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// ErrUnsupportedDriver is returned by Open for an unknown driver name.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Config holds store connection settings.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool

	// LogLevel is one of silent, error, warn, info. Info logs every statement.
	LogLevel      string
	SlowThreshold time.Duration
	Logger        *slog.Logger
}

// DB owns the gorm handle and the underlying connection pool.
type DB struct {
	gorm    *gorm.DB
	sql     *sql.DB
	dialect dialect
	logger  *slog.Logger
}

// Open connects to the configured store, applies pool limits, verifies the
// connection and optionally migrates the schema.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dialector, d, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger, cfg.LogLevel, cfg.SlowThreshold),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	configurePool(sqlDB, cfg)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging %s database: %w", cfg.Driver, err)
	}

	db := &DB{gorm: gdb, sql: sqlDB, dialect: d, logger: logger}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.Info("database connected",
		slog.String("driver", cfg.Driver),
		slog.String("target", logging.RedactDSN(cfg.DSN)),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)

	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, dialect, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return postgres.Open(cfg.DSN), postgresDialect{}, nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.DSN)), sqliteDialect{}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}

	return dsn + "?" + sqlitePragmas
}

func configurePool(sqlDB *sql.DB, cfg Config) {
	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	if cfg.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)

		return
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// Migrate creates or updates the schema for every model.
func (db *DB) Migrate(ctx context.Context) error {
	err := db.gorm.WithContext(ctx).AutoMigrate(
		&userModel{},
		&authorModel{},
		&tagModel{},
		&articleModel{},
		&authorshipModel{},
		&articleTagModel{},
		&commentModel{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string {
	return "database"
}

// Check implements ports.HealthChecker by pinging the pool.
func (db *DB) Check(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Articles returns the article repository.
func (db *DB) Articles() *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Comments returns the comment repository.
func (db *DB) Comments() *CommentRepository {
	return &CommentRepository{db: db}
}

// Catalog returns the author and tag repository.
func (db *DB) Catalog() *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Seeder returns the demo data loader.
func (db *DB) Seeder() *Seeder {
	return &Seeder{db: db}
}

// transaction runs fn in one store transaction bound to ctx. Lost
// connections and lock conflicts come back as domain errors.
func (db *DB) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return classify(db.gorm.WithContext(ctx).Transaction(fn))
}
