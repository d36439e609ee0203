// Package main is the seed CLI: it loads demo users and sample articles and
// mints bearer tokens for local testing.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/articles-service/internal/adapters/storage"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env carries what every subcommand needs once the config is loaded.
type env struct {
	profile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into the articles database",
		Long: `seed prepares a database for local development and demos.

Configuration is read the same way as the service: configs/base.yaml,
configs/<profile>.yaml, then APP_* environment variables.

Examples:
  seed users                                   # Ensure demo_user1 and demo_user2
  seed articles --count 150 --username demo_user1
  seed token --subject demo_user1 --ttl 24h    # Print a bearer token`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load()
		},
	}

	root.PersistentFlags().StringVar(&e.profile, "profile", defaultProfile(), "config profile to load")

	root.AddCommand(newUsersCmd(e), newArticlesCmd(e), newTokenCmd(e))

	return root
}

func defaultProfile() string {
	if p := os.Getenv("APP_ENVIRONMENT"); p != "" {
		return p
	}

	return "local"
}

func (e *env) load() error {
	cfg, err := config.Load(e.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.cfg = cfg
	e.logger = logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  "text",
		Service: "articles-seed",
		Version: cfg.App.Version,
	}, os.Stderr)

	return nil
}

// open connects to the configured store and migrates it; seeding an empty
// database is the common case.
func (e *env) open(ctx context.Context) (*storage.DB, error) {
	db, err := storage.Open(ctx, storage.Config{
		Driver:          e.cfg.Database.Driver,
		DSN:             e.cfg.Database.DSN,
		MaxOpenConns:    e.cfg.Database.MaxOpenConns,
		MaxIdleConns:    e.cfg.Database.MaxIdleConns,
		ConnMaxLifetime: e.cfg.Database.ConnMaxLifetime,
		AutoMigrate:     true,
		LogLevel:        e.cfg.Database.LogLevel,
		SlowThreshold:   e.cfg.Database.SlowThreshold,
		Logger:          e.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return db, nil
}
