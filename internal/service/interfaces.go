// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/monika2305/BIM/internal/model"
)

// ReportFilter defines filtering options for stored report queries.
type ReportFilter struct {
	Since  *time.Time
	Limit  int
	Offset int
}

// ReportSummary is the lightweight listing row for report history.
type ReportSummary struct {
	GeneratedAt time.Time
	ID          string
	SourceFile  string
	Total       int
	ProxyPct    float64
	Severity    model.Severity
}

// Storage defines the contract for the report persistence layer.
type Storage interface {
	SaveReport(ctx context.Context, report *model.AnalysisReport) error
	GetReport(ctx context.Context, id string) (*model.AnalysisReport, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]ReportSummary, error)

	Migrate(ctx context.Context) error
	Close() error
}

// ReportWriter exports an assembled report to an external destination.
// Writers consume the report read-only; they never recompute counts or
// percentages.
type ReportWriter interface {
	Write(ctx context.Context, report *model.AnalysisReport) error
}

// RetryOptions configures retry behavior for outbound writers.
type RetryOptions struct {
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	MaxAttempts  int
}
