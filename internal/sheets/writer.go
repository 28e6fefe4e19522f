package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/monika2305/BIM/internal/common"
	"github.com/monika2305/BIM/internal/model"
	"github.com/monika2305/BIM/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer implements the ReportWriter interface for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Write exports the report to a spreadsheet. The report is read as-is; no
// count or percentage is recomputed here.
func (w *Writer) Write(ctx context.Context, report *model.AnalysisReport) error {
	w.logger.Info("starting spreadsheet export",
		"report_id", report.ID,
		"source", report.SourceFile,
		"severity", report.Severity.String())

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := w.prepareReportData(report)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("spreadsheet export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: "Analysis",
				},
			},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// clearSheet clears all data from the sheet.
func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareReportData flattens the report into spreadsheet rows.
func (w *Writer) prepareReportData(report *model.AnalysisReport) [][]any {
	cls := report.Classification

	estimatedRows := 24 + len(report.ProxyElements) + len(report.WallsMissingPset.Elements)
	values := make([][]any, 0, estimatedRows)

	values = append(values,
		[]any{"IFC Semantic Analysis Report", report.GeneratedAt.Format("Jan 2, 2006 15:04 MST")},
		[]any{"Model", report.SourceFile},
		[]any{},
		[]any{"Context"},
		[]any{"Name", orNA(report.Context.Name)},
		[]any{"Role", orNA(report.Context.Role)},
		[]any{"Domain", orNA(report.Context.Domain)},
		[]any{"Purpose", orNA(report.Context.Purpose)},
		[]any{},
		[]any{"Summary Metrics"},
		[]any{"Total Elements", cls.Total},
		[]any{"Walls", cls.Walls},
		[]any{"Doors", cls.Doors},
		[]any{"Windows", cls.Windows},
		[]any{"Semantic Elements", cls.Semantic},
		[]any{"Proxy Elements", cls.Proxy},
		[]any{"Other Semantic Elements", cls.OtherSemantic},
		[]any{"Semantic %", cls.SemanticPct},
		[]any{"Proxy %", cls.ProxyPct},
		[]any{"Other %", cls.OtherPct},
		[]any{"Severity Level", report.Severity.String()},
	)

	if len(report.ProxyElements) > 0 {
		values = append(values,
			[]any{},
			[]any{"Proxy Elements Detail"},
			[]any{"Name", "GlobalId", "IFC Type", "Issue"},
		)
		for _, p := range report.ProxyElements {
			values = append(values, []any{p.Name, p.GlobalID, p.TypeTag, "Semantic meaning lost (generic proxy)"})
		}
	}

	if report.WallsMissingPset.Count > 0 {
		values = append(values,
			[]any{},
			[]any{"Walls Missing " + report.WallsMissingPset.GroupName},
			[]any{"Wall Name", "GlobalId", "Issue"},
		)
		for _, e := range report.WallsMissingPset.Elements {
			values = append(values, []any{e.Name, e.GlobalID, report.WallsMissingPset.GroupName + " missing"})
		}
	}

	return values
}

// writeData writes the prepared rows starting at A1.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	valueRange := &sheets.ValueRange{Values: values}

	_, err := w.service.Spreadsheets.Values.
		Update(spreadsheetID, "A1", valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
