package main

import (
	"fmt"

	"github.com/monika2305/BIM/internal/cli"
	"github.com/monika2305/BIM/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <report-id>",
		Short: "Export a stored report to Google Sheets",
		Long: `Export a stored analysis report to a Google Sheets spreadsheet.

Authentication uses either a service account key or OAuth2 refresh-token
credentials, configured via environment variables (GOOGLE_SHEETS_*) or the
sheets section of the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("spreadsheet-id", "", "Existing spreadsheet to write into (default: create a new one)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	config := sheets.DefaultConfig()
	if err := config.LoadFromEnv(); err != nil {
		// Fall back to the config file for credentials.
		config.ClientID = viper.GetString("sheets.client_id")
		config.ClientSecret = viper.GetString("sheets.client_secret")
		config.RefreshToken = viper.GetString("sheets.refresh_token")
		config.ServiceAccountPath = viper.GetString("sheets.service_account_path")
		config.SpreadsheetName = viper.GetString("sheets.spreadsheet_name")
	}
	if id, _ := cmd.Flags().GetString("spreadsheet-id"); id != "" {
		config.SpreadsheetID = id
	}
	if config.SpreadsheetName == "" {
		config.SpreadsheetName = "IFC Analysis Report"
	}

	writer, err := sheets.NewWriter(ctx, config, nil)
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	if err := writer.Write(ctx, report); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Println(cli.FormatSuccess("Report exported to Google Sheets."))
	return nil
}
