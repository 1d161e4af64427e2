package main

import (
	"context"
	"fmt"
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bookcourier/bookcourier/app"
	"github.com/Astemirdum/bookcourier/bookcourier/config"
	"github.com/Astemirdum/bookcourier/bookcourier/migrations"
	"github.com/Astemirdum/bookcourier/pkg/auth0"
	"github.com/Astemirdum/bookcourier/pkg/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment")
	}
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		stdLog.Fatal(err)
	}
}

func loadConfig() config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bookcourier",
		Short:         "Book ordering marketplace backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), loadConfig())
		},
	}
	root.AddCommand(serveCmd(), migrateCmd(), tokenCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the events consumer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), loadConfig())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			db, err := postgres.Open(cmd.Context(), &cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()
			return postgres.Migrate(db, migrations.MigrationFiles, args[0])
		},
	}
}

// tokenCmd signs an HS256 bearer token for local use with AUTH_JWT_SECRET.
func tokenCmd() *cobra.Command {
	var (
		email string
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token with AUTH_JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if cfg.Auth0.Secret == "" {
				return errors.New("AUTH_JWT_SECRET is empty")
			}
			token, err := auth0.SignToken([]byte(cfg.Auth0.Secret), email, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "principal email")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
