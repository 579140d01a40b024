package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/punchcli/punch/internal/domain/ledger"
)

// LedgerRepository implements ledger.Repository for SQLite
type LedgerRepository struct {
	db *DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// FindOpenSlice returns the running slice, or nil when there is none.
func (r *LedgerRepository) FindOpenSlice(ctx context.Context) (*ledger.OpenSlice, error) {
	return findOpenTimeslice(ctx, r.db)
}

// StartSlice creates an open timeslice with its project and tags in one
// transaction. Any failure rolls back the entire start: no orphan slice, no
// partial tag set.
func (r *LedgerRepository) StartSlice(ctx context.Context, projectTitle string, tags []string, startedOn time.Time, externalID string) (*ledger.OpenSlice, error) {
	var out *ledger.OpenSlice
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		projectID, err := getOrCreateProject(ctx, tx, projectTitle)
		if err != nil {
			return err
		}

		sliceID, err := createTimeslice(ctx, tx, &ledger.Timeslice{
			ProjectID:  projectID,
			StartedOn:  startedOn,
			ExternalID: externalID,
		})
		if err != nil {
			return err
		}

		for _, title := range tags {
			tagID, err := getOrCreateTag(ctx, tx, title, projectID)
			if err != nil {
				return err
			}
			if err := assignTagToTimeslice(ctx, tx, tagID, sliceID); err != nil {
				return err
			}
		}

		out = &ledger.OpenSlice{
			ID:           sliceID,
			ProjectTitle: projectTitle,
			StartedOn:    startedOn,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CloseSlice sets stopped_on on an open slice.
func (r *LedgerRepository) CloseSlice(ctx context.Context, id int64, stoppedOn time.Time) error {
	return closeTimeslice(ctx, r.db, id, stoppedOn)
}

// ImportFrames stores closed slices for a batch of historical frames in one
// transaction.
func (r *LedgerRepository) ImportFrames(ctx context.Context, frames []ledger.Frame) (int, error) {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, frame := range frames {
			if err := importFrame(ctx, tx, frame); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(frames), nil
}

func importFrame(ctx context.Context, tx *sql.Tx, frame ledger.Frame) error {
	projectID, err := getOrCreateProject(ctx, tx, frame.Project)
	if err != nil {
		return err
	}

	stoppedOn := frame.StoppedOn
	sliceID, err := createTimeslice(ctx, tx, &ledger.Timeslice{
		ProjectID:  projectID,
		StartedOn:  frame.StartedOn,
		StoppedOn:  &stoppedOn,
		ExternalID: frame.ExternalID,
	})
	if err != nil {
		return err
	}

	for _, title := range frame.Tags {
		tagID, err := getOrCreateTag(ctx, tx, title, projectID)
		if err != nil {
			return err
		}
		if err := assignTagToTimeslice(ctx, tx, tagID, sliceID); err != nil {
			return err
		}
	}
	return nil
}
