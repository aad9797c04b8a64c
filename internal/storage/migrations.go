package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/online-go/movereview/internal/common"
)

// ExpectedSchemaVersion is the schema version a migrated cache must reach.
const ExpectedSchemaVersion = 2

// Migration is one schema step. Its statements run in a single transaction.
type Migration struct {
	Description string
	Statements  []string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Create reviews table",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS reviews (
				id TEXT PRIMARY KEY,
				game_id TEXT NOT NULL,
				engine TEXT NOT NULL,
				kind TEXT NOT NULL,
				ply_count INTEGER NOT NULL DEFAULT 0,
				payload TEXT NOT NULL,
				imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX idx_reviews_game_id ON reviews(game_id)`,
		},
	},
	{
		Version:     2,
		Description: "Track score count and uploaded games",
		Statements: []string{
			`ALTER TABLE reviews ADD COLUMN score_count INTEGER NOT NULL DEFAULT 0`,
			`ALTER TABLE reviews ADD COLUMN uploaded BOOLEAN NOT NULL DEFAULT 0`,
			`CREATE INDEX idx_reviews_imported_at ON reviews(imported_at)`,
		},
	},
}

// apply runs the migration and bumps user_version inside tx.
func (m Migration) apply(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range m.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", firstLine(stmt), err)
		}
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}

// SchemaVersion reports the database's current user_version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		if err := migration.apply(ctx, tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("%w: schema version %d, want %d", common.ErrDatabaseCorrupted, finalVersion, ExpectedSchemaVersion)
	}

	return nil
}
