package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monika2305/BIM/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidReport = errors.New("invalid report")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateReport checks that a report is persistable.
func validateReport(report *model.AnalysisReport) error {
	if report == nil {
		return fmt.Errorf("%w: report", ErrNilParameter)
	}
	if report.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidReport)
	}
	if report.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: missing generation time", ErrInvalidReport)
	}
	if report.Classification.Total < 0 {
		return fmt.Errorf("%w: negative element count", ErrInvalidReport)
	}
	return nil
}
