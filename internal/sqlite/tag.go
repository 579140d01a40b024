package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/punchcli/punch/internal/repository"
)

func findTag(ctx context.Context, h DBTX, title string, projectID int64) (int64, bool, error) {
	var id int64
	err := h.QueryRowContext(ctx,
		`SELECT tag_id FROM tag WHERE title = ? AND project_id = ?`,
		title, projectID).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find tag: %w", err)
	}
	return id, true, nil
}

func createTag(ctx context.Context, h DBTX, title string, projectID int64) (int64, error) {
	res, err := h.ExecContext(ctx,
		`INSERT INTO tag (title, project_id) VALUES (?, ?)`, title, projectID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrConstraintViolation
		}
		if isForeignKeyViolation(err) {
			return 0, repository.ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to create tag: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get tag id: %w", err)
	}
	return id, nil
}

func getOrCreateTag(ctx context.Context, h DBTX, title string, projectID int64) (int64, error) {
	id, ok, err := findTag(ctx, h, title, projectID)
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}
	return createTag(ctx, h, title, projectID)
}

func assignTagToTimeslice(ctx context.Context, h DBTX, tagID, timesliceID int64) error {
	_, err := h.ExecContext(ctx,
		`INSERT INTO timeslice_tag (tag_id, timeslice_id) VALUES (?, ?)`,
		tagID, timesliceID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to assign tag to timeslice: %w", err)
	}
	return nil
}
