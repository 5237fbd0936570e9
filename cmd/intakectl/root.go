package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/istpublications/intake-backend/internal/adapter/postgres"
	"github.com/istpublications/intake-backend/internal/app"
	"github.com/istpublications/intake-backend/internal/config"
	"github.com/istpublications/intake-backend/internal/service/email"
)

// commandContext lazily loads configuration and the database pool shared
// by subcommands.
type commandContext struct {
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
}

func (c *commandContext) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	if err := godotenv.Load(c.envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load %s: %w", c.envFile, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.logger = app.NewLogger(cfg.Log)
	return cfg, nil
}

func (c *commandContext) db(ctx context.Context) (*pgxpool.Pool, error) {
	if c.pool != nil {
		return c.pool, nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	c.pool = pool
	return pool, nil
}

func (c *commandContext) emailService(ctx context.Context) (*email.Service, error) {
	pool, err := c.db(ctx)
	if err != nil {
		return nil, err
	}
	return app.NewEmailService(c.logger, pool, c.cfg), nil
}

func (c *commandContext) close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	root := &cobra.Command{
		Use:           "intakectl",
		Short:         "Operator tools for the journal intake backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&ctx.envFile, "env-file", ".env", "Environment file loaded before configuration")

	root.AddCommand(newRetryEmailsCommand(ctx))
	root.AddCommand(newEmailStatsCommand(ctx))
	root.AddCommand(newSeedTemplatesCommand(ctx))
	root.AddCommand(newMigrateCommand(ctx))

	return root
}
