package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/punchcli/punch/internal/domain/ledger"
	"github.com/punchcli/punch/internal/repository"
)

func findProjectByTitle(ctx context.Context, h DBTX, title string) (*ledger.Project, error) {
	var p ledger.Project
	err := h.QueryRowContext(ctx,
		`SELECT project_id, title FROM project WHERE title = ?`, title).
		Scan(&p.ID, &p.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find project by title: %w", err)
	}
	return &p, nil
}

func createProject(ctx context.Context, h DBTX, title string) (int64, error) {
	res, err := h.ExecContext(ctx,
		`INSERT INTO project (title) VALUES (?)`, title)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrConstraintViolation
		}
		return 0, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get project id: %w", err)
	}
	return id, nil
}

// getOrCreateProject resolves a project by title, creating it on first
// reference. Check-then-create assumes no concurrent external writer.
func getOrCreateProject(ctx context.Context, h DBTX, title string) (int64, error) {
	proj, err := findProjectByTitle(ctx, h, title)
	if err != nil {
		return 0, err
	}
	if proj != nil {
		return proj.ID, nil
	}
	return createProject(ctx, h, title)
}
