package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/istpublications/intake-backend/internal/domain"
)

func newRetryEmailsCommand(ctx *commandContext) *cobra.Command {
	var maxRetries int

	cmd := &cobra.Command{
		Use:   "retry-emails",
		Short: "Mark retry-eligible FAILED emails as RETRYING",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxRetries < 0 || maxRetries > domain.MaxEmailRetries {
				return fmt.Errorf("--max-retries must be between 0 and %d", domain.MaxEmailRetries)
			}
			svc, err := ctx.emailService(cmd.Context())
			if err != nil {
				return err
			}

			n, err := svc.RetryAll(cmd.Context(), maxRetries)
			if err != nil {
				return err
			}
			ctx.logger.Info("retry pass completed", slog.Int("retried", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Retried: %d\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxRetries, "max-retries", 0, "Retry ceiling (0 uses email.max_retries)")

	return cmd
}

func newEmailStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "email-stats",
		Short: "Show delivery log statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.emailService(cmd.Context())
			if err != nil {
				return err
			}

			stats, err := svc.Stats(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func printStats(out io.Writer, s domain.EmailStats) {
	rows := [][]string{
		{"Sent", strconv.Itoa(s.TotalSent)},
		{"Failed", strconv.Itoa(s.TotalFailed)},
		{"Pending", strconv.Itoa(s.TotalPending)},
		{"Sent today (UTC)", strconv.Itoa(s.TodaySent)},
		{"Failure rate", fmt.Sprintf("%.2f%%", s.FailureRate)},
	}
	fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
}

func newSeedTemplatesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-templates",
		Short: "Create or update the default email templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.emailService(cmd.Context())
			if err != nil {
				return err
			}

			n, err := svc.SeedTemplates(cmd.Context())
			if err != nil {
				return err
			}

			templates, err := svc.ListTemplates(cmd.Context())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{t.Name, t.Type.String(), strconv.FormatBool(t.IsActive), strconv.Itoa(len(t.Variables))})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded: %d\n", n)
			fmt.Fprintln(out, renderTable([]string{"Name", "Type", "Active", "Variables"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight}))
			return nil
		},
	}
}
