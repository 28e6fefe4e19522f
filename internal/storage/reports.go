package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monika2305/BIM/internal/common"
	"github.com/monika2305/BIM/internal/model"
	"github.com/monika2305/BIM/internal/service"
)

// SaveReport persists an assembled analysis report with its element
// listings. Reports are immutable; saving the same id twice is a duplicate
// entry error.
func (s *SQLiteStorage) SaveReport(ctx context.Context, report *model.AnalysisReport) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReport(report); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM reports WHERE id = ?)`, report.ID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check report existence: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: report %s", common.ErrDuplicateEntry, report.ID)
	}

	cls := report.Classification
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reports (
			id, generated_at, source_file,
			user_name, user_role, user_domain, user_purpose,
			total, walls, doors, windows, semantic, proxy, other_semantic,
			semantic_pct, proxy_pct, other_pct,
			severity, pset_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		report.ID,
		report.GeneratedAt,
		report.SourceFile,
		report.Context.Name,
		report.Context.Role,
		report.Context.Domain,
		report.Context.Purpose,
		cls.Total, cls.Walls, cls.Doors, cls.Windows,
		cls.Semantic, cls.Proxy, cls.OtherSemantic,
		cls.SemanticPct, cls.ProxyPct, cls.OtherPct,
		report.Severity.String(),
		report.WallsMissingPset.GroupName,
	); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	for i, ref := range report.ProxyElements {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO proxy_elements (report_id, position, global_id, name, type_tag)
			VALUES (?, ?, ?, ?, ?)
		`, report.ID, i, ref.GlobalID, ref.Name, ref.TypeTag); err != nil {
			return fmt.Errorf("failed to save proxy element: %w", err)
		}
	}

	for i, ref := range report.WallsMissingPset.Elements {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO missing_pset_elements (report_id, position, global_id, name)
			VALUES (?, ?, ?, ?)
		`, report.ID, i, ref.GlobalID, ref.Name); err != nil {
			return fmt.Errorf("failed to save missing pset element: %w", err)
		}
	}

	return tx.Commit()
}

// GetReport loads one stored report by id.
func (s *SQLiteStorage) GetReport(ctx context.Context, id string) (*model.AnalysisReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var (
		report   model.AnalysisReport
		severity string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, generated_at, source_file,
			user_name, user_role, user_domain, user_purpose,
			total, walls, doors, windows, semantic, proxy, other_semantic,
			semantic_pct, proxy_pct, other_pct,
			severity, pset_name
		FROM reports WHERE id = ?
	`, id).Scan(
		&report.ID,
		&report.GeneratedAt,
		&report.SourceFile,
		&report.Context.Name,
		&report.Context.Role,
		&report.Context.Domain,
		&report.Context.Purpose,
		&report.Classification.Total,
		&report.Classification.Walls,
		&report.Classification.Doors,
		&report.Classification.Windows,
		&report.Classification.Semantic,
		&report.Classification.Proxy,
		&report.Classification.OtherSemantic,
		&report.Classification.SemanticPct,
		&report.Classification.ProxyPct,
		&report.Classification.OtherPct,
		&severity,
		&report.WallsMissingPset.GroupName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: report %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	parsed, ok := model.ParseSeverity(severity)
	if !ok {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidReport, severity)
	}
	report.Severity = parsed

	report.ProxyElements, err = s.loadProxyElements(ctx, id)
	if err != nil {
		return nil, err
	}

	report.WallsMissingPset.Elements, err = s.loadMissingPsetElements(ctx, id)
	if err != nil {
		return nil, err
	}
	report.WallsMissingPset.Count = len(report.WallsMissingPset.Elements)

	return &report, nil
}

func (s *SQLiteStorage) loadProxyElements(ctx context.Context, reportID string) ([]model.ElementRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT global_id, name, type_tag FROM proxy_elements
		WHERE report_id = ? ORDER BY position
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load proxy elements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []model.ElementRef
	for rows.Next() {
		var ref model.ElementRef
		if err := rows.Scan(&ref.GlobalID, &ref.Name, &ref.TypeTag); err != nil {
			return nil, fmt.Errorf("failed to scan proxy element: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *SQLiteStorage) loadMissingPsetElements(ctx context.Context, reportID string) ([]model.ElementRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT global_id, name FROM missing_pset_elements
		WHERE report_id = ? ORDER BY position
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load missing pset elements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []model.ElementRef
	for rows.Next() {
		var ref model.ElementRef
		if err := rows.Scan(&ref.GlobalID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan missing pset element: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ListReports returns stored report summaries, newest first.
func (s *SQLiteStorage) ListReports(ctx context.Context, filter service.ReportFilter) ([]service.ReportSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, generated_at, source_file, total, proxy_pct, severity
		FROM reports`
	args := make([]any, 0, 3)

	if filter.Since != nil {
		query += ` WHERE generated_at >= ?`
		args = append(args, *filter.Since)
	}
	query += ` ORDER BY generated_at DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []service.ReportSummary
	for rows.Next() {
		var (
			summary  service.ReportSummary
			severity string
		)
		if err := rows.Scan(
			&summary.ID,
			&summary.GeneratedAt,
			&summary.SourceFile,
			&summary.Total,
			&summary.ProxyPct,
			&severity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report summary: %w", err)
		}
		if parsed, ok := model.ParseSeverity(severity); ok {
			summary.Severity = parsed
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
