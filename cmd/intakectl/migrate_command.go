package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/istpublications/intake-backend/internal/adapter/postgres"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			n, err := postgres.Migrate(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied: %d\n", n)
			return nil
		},
	}
	cmd.AddCommand(newMigrateStatusCommand(ctx))

	return cmd
}

func newMigrateStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}

			statuses, err := postgres.MigrationStatus(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				applied := ""
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.UTC().Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.Source.Version, 10),
					filepath.Base(s.Source.Path),
					string(s.State),
					applied,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Version", "File", "State", "Applied"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}
}
