package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Migration is a one-time schema transformation identified by a strictly
// increasing ordinal. Apply runs inside the transaction that also records
// the migration, so a migration is either fully applied or not at all.
type Migration struct {
	ID    int64
	Name  string
	Apply func(ctx context.Context, tx *sql.Tx) error
}

// EnsureMigrationsTable idempotently creates the record-keeping table.
func (db *DB) EnsureMigrationsTable(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id INTEGER PRIMARY KEY NOT NULL,
			executed_on TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// HasMigration reports whether a record exists for the given ordinal. The
// presence of a record is the sole signal that a migration must be skipped.
func (db *DB) HasMigration(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM schema_migrations WHERE id = ?`, id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	return true, nil
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	return db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := m.Apply(ctx, tx); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.ID, m.Name, err)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (id, executed_on) VALUES (?, ?)`,
			m.ID, formatTime(time.Now()))
		if err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.ID, err)
		}
		return nil
	})
}

// Migrate brings the store to the expected shape: every migration without a
// record is executed exactly once, in ascending ordinal order. The run stops
// at the first failure, leaving the store as it was before the failed
// migration.
func (db *DB) Migrate(ctx context.Context, migrations []Migration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := db.EnsureMigrationsTable(ctx); err != nil {
		return err
	}

	var prev int64
	for _, m := range migrations {
		if m.ID <= prev {
			return fmt.Errorf("migration ordinals must be strictly increasing, got %d after %d", m.ID, prev)
		}
		prev = m.ID

		done, err := db.HasMigration(ctx, m.ID)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		logger.Debug("applying migration", "id", m.ID, "name", m.Name)
		if err := db.applyMigration(ctx, m); err != nil {
			return err
		}
	}

	return nil
}
