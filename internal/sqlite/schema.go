package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrations returns the ordered list of schema migrations building the
// ledger tables. The list only ever grows; applied entries must not change.
func Migrations() []Migration {
	return []Migration{
		{
			ID:   1,
			Name: "initial structure",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				return execAll(ctx, tx,
					`CREATE TABLE project (
						project_id INTEGER PRIMARY KEY NOT NULL,
						title TEXT NOT NULL,
						CONSTRAINT title_unique UNIQUE (title)
					)`,
					`CREATE TABLE timeslice (
						timeslice_id INTEGER PRIMARY KEY NOT NULL,
						project_id INTEGER NOT NULL,
						started_on TEXT NOT NULL,
						stopped_on TEXT,
						external_id TEXT,
						FOREIGN KEY (project_id) REFERENCES project (project_id)
					)`,
				)
			},
		},
		{
			ID:   2,
			Name: "tags",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				return execAll(ctx, tx,
					`CREATE TABLE tag (
						tag_id INTEGER PRIMARY KEY NOT NULL,
						title TEXT NOT NULL,
						project_id INTEGER NOT NULL,
						FOREIGN KEY (project_id) REFERENCES project (project_id),
						CONSTRAINT title_project_unique UNIQUE (title, project_id)
					)`,
					`CREATE TABLE timeslice_tag (
						tag_id INTEGER NOT NULL,
						timeslice_id INTEGER NOT NULL,
						FOREIGN KEY (tag_id) REFERENCES tag (tag_id),
						FOREIGN KEY (timeslice_id) REFERENCES timeslice (timeslice_id)
					)`,
				)
			},
		},
		{
			ID:   3,
			Name: "open slice lookup index",
			Apply: func(ctx context.Context, tx *sql.Tx) error {
				// Serves the open-slice point query. Not UNIQUE: the
				// single-open-slice rule is application-enforced.
				return execAll(ctx, tx,
					`CREATE INDEX idx_timeslice_open ON timeslice (stopped_on) WHERE stopped_on IS NULL`,
				)
			},
		},
	}
}

func execAll(ctx context.Context, tx *sql.Tx, statements ...string) error {
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
