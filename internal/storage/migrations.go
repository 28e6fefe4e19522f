package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS reports (
					id TEXT PRIMARY KEY,
					generated_at DATETIME NOT NULL,
					source_file TEXT,
					user_name TEXT,
					user_role TEXT,
					user_domain TEXT,
					user_purpose TEXT,
					total INTEGER NOT NULL,
					walls INTEGER NOT NULL,
					doors INTEGER NOT NULL,
					windows INTEGER NOT NULL,
					semantic INTEGER NOT NULL,
					proxy INTEGER NOT NULL,
					other_semantic INTEGER NOT NULL,
					semantic_pct REAL NOT NULL,
					proxy_pct REAL NOT NULL,
					other_pct REAL NOT NULL,
					severity TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_reports_generated_at ON reports(generated_at)`,

				`CREATE TABLE IF NOT EXISTS proxy_elements (
					report_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					global_id TEXT NOT NULL,
					name TEXT,
					type_tag TEXT,
					PRIMARY KEY (report_id, position),
					FOREIGN KEY (report_id) REFERENCES reports(id)
				)`,

				`CREATE TABLE IF NOT EXISTS missing_pset_elements (
					report_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					global_id TEXT NOT NULL,
					name TEXT,
					PRIMARY KEY (report_id, position),
					FOREIGN KEY (report_id) REFERENCES reports(id)
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Record the required pset name per report",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`ALTER TABLE reports ADD COLUMN pset_name TEXT NOT NULL DEFAULT 'Pset_WallCommon'`)
			if err != nil {
				return fmt.Errorf("failed to add pset_name column: %w", err)
			}
			return nil
		},
	},
}

// Migrate runs all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Create migrations table if not exists
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
			migration.Version, migration.Description,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	final, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("schema version mismatch: have %d, expected %d", final, ExpectedSchemaVersion)
	}

	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(version) FROM schema_migrations`).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}
