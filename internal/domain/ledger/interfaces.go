package ledger

import (
	"context"
	"time"
)

// Repository provides persistence for the time ledger. Multi-statement
// operations are atomic: either fully visible to a subsequent reader or not
// at all.
type Repository interface {
	// FindOpenSlice returns the running slice, or nil when there is none.
	FindOpenSlice(ctx context.Context) (*OpenSlice, error)

	// StartSlice resolves or creates the project and each tag, creates an
	// open timeslice, and assigns the tags, all in one transaction.
	StartSlice(ctx context.Context, projectTitle string, tags []string, startedOn time.Time, externalID string) (*OpenSlice, error)

	// CloseSlice sets stopped_on on an open slice. Closing a slice that is
	// missing or already closed returns repository.ErrNotFound.
	CloseSlice(ctx context.Context, id int64, stoppedOn time.Time) error

	// ImportFrames stores a batch of closed slices in one transaction and
	// returns the number of frames written. The first failing frame rolls
	// back the whole batch.
	ImportFrames(ctx context.Context, frames []Frame) (int, error)
}
