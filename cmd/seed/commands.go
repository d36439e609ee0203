package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/articles-service/internal/app"
	"github.com/jsamuelsen/articles-service/internal/platform/auth"
)

// errNoSecret is returned by the token command when the service trusts the
// identity header and would ignore any token.
var errNoSecret = errors.New("auth.jwt_secret is not configured; set APP_AUTH_JWT_SECRET")

func newUsersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "Ensure the demo users exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			created, err := app.NewSeedService(db.Seeder(), nil, e.logger).SeedUsers(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "users: %d created, %d already present\n",
				created, len(app.DemoUsers)-created)

			return nil
		},
	}
}

func newArticlesCmd(e *env) *cobra.Command {
	var (
		count    int
		username string
	)

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "Ensure sample articles ART-000001 onwards exist",
		Long: `Ensure --count sample articles exist, owned by --username.

Articles are matched by identifier, so running the command twice creates
nothing the second time. The owner is created if missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			created, err := app.NewSeedService(db.Seeder(), nil, e.logger).
				SeedArticles(cmd.Context(), count, username)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "articles: %d created, %d already present\n",
				created, count-created)

			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 150, "number of sample articles")
	cmd.Flags().StringVar(&username, "username", "demo_user", "owner of the sample articles")

	return cmd
}

func newTokenCmd(e *env) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for --subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if e.cfg.Auth.JWTSecret == "" {
				return errNoSecret
			}

			tokens := auth.NewTokens(auth.Config{
				Secret:   []byte(e.cfg.Auth.JWTSecret),
				Issuer:   e.cfg.Auth.Issuer,
				Audience: e.cfg.Auth.Audience,
			})

			token, err := tokens.Issue(subject, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "username carried by the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
