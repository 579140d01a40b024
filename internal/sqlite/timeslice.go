package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/punchcli/punch/internal/domain/ledger"
	"github.com/punchcli/punch/internal/repository"
)

func createTimeslice(ctx context.Context, h DBTX, ts *ledger.Timeslice) (int64, error) {
	var stoppedOn any
	if ts.StoppedOn != nil {
		stoppedOn = formatTime(*ts.StoppedOn)
	}

	res, err := h.ExecContext(ctx,
		`INSERT INTO timeslice (project_id, started_on, stopped_on, external_id)
		 VALUES (?, ?, ?, ?)`,
		ts.ProjectID, formatTime(ts.StartedOn), stoppedOn, ts.ExternalID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, repository.ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to create timeslice: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get timeslice id: %w", err)
	}
	return id, nil
}

// closeTimeslice is a conditional update: it only touches a row that is
// still open, so stopping an already-closed slice surfaces as ErrNotFound
// instead of silently overwriting the stop time.
func closeTimeslice(ctx context.Context, h DBTX, id int64, stoppedOn time.Time) error {
	res, err := h.ExecContext(ctx,
		`UPDATE timeslice SET stopped_on = ? WHERE timeslice_id = ? AND stopped_on IS NULL`,
		formatTime(stoppedOn), id)
	if err != nil {
		return fmt.Errorf("failed to close timeslice: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// findOpenTimeslice returns the slice with an absent stopped_on, joined to
// its project. At most one row can match, so this is a point lookup.
func findOpenTimeslice(ctx context.Context, h DBTX) (*ledger.OpenSlice, error) {
	var (
		slice     ledger.OpenSlice
		startedOn string
	)
	err := h.QueryRowContext(ctx, `
		SELECT t.timeslice_id, t.started_on, p.title
		FROM timeslice t
		JOIN project p USING (project_id)
		WHERE t.stopped_on IS NULL
	`).Scan(&slice.ID, &startedOn, &slice.ProjectTitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find open timeslice: %w", err)
	}

	slice.StartedOn, err = parseTime(startedOn)
	if err != nil {
		return nil, err
	}
	return &slice, nil
}
