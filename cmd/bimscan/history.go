package main

import (
	"encoding/json"
	"fmt"

	"github.com/monika2305/BIM/internal/cli"
	"github.com/monika2305/BIM/internal/service"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse stored analysis reports",
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			limit, _ := cmd.Flags().GetInt("limit")
			summaries, err := store.ListReports(ctx, service.ReportFilter{Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list reports: %w", err)
			}

			if len(summaries) == 0 {
				cmd.Println(cli.FormatInfo("No stored reports. Run bimscan analyze --save first."))
				return nil
			}

			for _, s := range summaries {
				severity := cli.SeverityStyle(s.Severity).Render(s.Severity.String())
				cmd.Printf("%s  %s  %s  elements=%d  proxy=%.2f%%  %s\n",
					s.ID,
					s.GeneratedAt.Format("2006-01-02 15:04"),
					s.SourceFile,
					s.Total,
					s.ProxyPct,
					severity)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of reports to list")

	return cmd
}

func historyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Display one stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			report, err := store.GetReport(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}

			if output, _ := cmd.Flags().GetString("output"); output == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(report)
			}

			formatter := cli.NewReportFormatter()
			cmd.Println(formatter.Format(report))
			return nil
		},
	}

	cmd.Flags().String("output", "table", "Output format (table, json)")

	return cmd
}
