package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/monika2305/BIM/internal/cli"
	"github.com/monika2305/BIM/internal/engine"
	"github.com/monika2305/BIM/internal/ifc"
	"github.com/monika2305/BIM/internal/model"
	"github.com/monika2305/BIM/internal/tui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <snapshot>",
		Short: "Analyze a model snapshot for semantic data loss",
		Long: `Analyze an extracted IFC element snapshot and report how much semantic
information the model retains.

The snapshot is a JSON or YAML dump of the model's product elements and
their property-set relations, produced by any IFC toolkit.

Examples:
  # Analyze with context flags
  bimscan analyze office.json --role "BIM Manager" --domain Architecture

  # Collect context interactively first
  bimscan analyze office.json --interactive

  # Machine-readable output
  bimscan analyze office.json --output json

  # Keep the report in the local history database
  bimscan analyze office.json --save`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	// User context
	cmd.Flags().Bool("interactive", false, "Collect user context with the interactive wizard")
	cmd.Flags().String("name", "", "Your name")
	cmd.Flags().String("role", "", "Your role (e.g. Architect, BIM Manager)")
	cmd.Flags().String("domain", "", "Project domain (e.g. Architecture, MEP)")
	cmd.Flags().String("purpose", "", "Purpose of the IFC model (e.g. Design coordination)")

	// Output
	cmd.Flags().String("output", "table", "Output format (table, json)")
	cmd.Flags().Bool("save", false, "Save the report to the history database")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	interruptHandler := cli.NewInterruptHandler(nil)
	ctx = interruptHandler.HandleInterrupts(ctx)

	userCtx, err := collectUserContext(cmd)
	if err != nil {
		if errors.Is(err, tui.ErrWizardCanceled) {
			fmt.Fprintln(os.Stderr, cli.FormatWarning("Analysis canceled."))
			return nil
		}
		return err
	}

	snapshotPath := args[0]
	snapshot, err := ifc.LoadSnapshot(snapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load model snapshot: %w", err)
	}
	slog.Info("model snapshot loaded",
		"path", snapshotPath,
		"elements", len(snapshot.Products()))

	opts := make([]engine.Option, 0, 1)
	output, _ := cmd.Flags().GetString("output")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	if output == "table" && !noProgress {
		bar := progressbar.NewOptions(100,
			progressbar.OptionSetDescription("Analyzing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
		opts = append(opts, engine.WithProgress(func(stage string, percent int) {
			bar.Describe(stage)
			_ = bar.Set(percent)
		}))
	}

	analyzer := engine.NewAnalyzer(slog.Default(), opts...)
	report, err := analyzer.Analyze(ctx, snapshot, userCtx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, storeErr := initStorage(ctx)
		if storeErr != nil {
			return fmt.Errorf("failed to initialize storage: %w", storeErr)
		}
		defer func() { _ = store.Close() }()

		if saveErr := store.SaveReport(ctx, report); saveErr != nil {
			return fmt.Errorf("failed to save report: %w", saveErr)
		}
		fmt.Fprintln(os.Stderr, cli.FormatSuccess("Report saved: "+report.ID))
	}

	return printReport(cmd, report, output)
}

// collectUserContext builds the user context from flags or the wizard.
func collectUserContext(cmd *cobra.Command) (model.UserContext, error) {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		return tui.RunWizard(cmd.Context())
	}

	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	domain, _ := cmd.Flags().GetString("domain")
	purpose, _ := cmd.Flags().GetString("purpose")

	return model.UserContext{
		Name:    name,
		Role:    role,
		Domain:  domain,
		Purpose: purpose,
	}, nil
}

// printReport renders the report in the requested output format.
func printReport(cmd *cobra.Command, report *model.AnalysisReport, output string) error {
	switch output {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "table":
		formatter := cli.NewReportFormatter()
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Format(report))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
