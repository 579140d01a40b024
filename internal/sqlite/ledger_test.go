package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/punchcli/punch/internal/domain/ledger"
	"github.com/punchcli/punch/internal/repository"
)

func TestLedgerRepository_StartSlice(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	startedOn := time.Date(2020, 9, 12, 8, 20, 0, 0, time.UTC)
	slice, err := repo.StartSlice(ctx, "website", []string{"backend", "admin"}, startedOn, "ext-1")
	require.NoError(t, err)
	require.Equal(t, "website", slice.ProjectTitle)
	require.True(t, slice.StartedOn.Equal(startedOn))

	require.Equal(t, 1, countRows(t, db, "project"))
	require.Equal(t, 1, countRows(t, db, "timeslice"))
	require.Equal(t, 2, countRows(t, db, "tag"))
	require.Equal(t, 2, countRows(t, db, "timeslice_tag"))
}

func TestLedgerRepository_StartSliceReusesProjectAndTags(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	first, err := repo.StartSlice(ctx, "website", []string{"backend"}, time.Now(), "ext-1")
	require.NoError(t, err)
	require.NoError(t, repo.CloseSlice(ctx, first.ID, time.Now()))

	_, err = repo.StartSlice(ctx, "website", []string{"backend"}, time.Now(), "ext-2")
	require.NoError(t, err)

	require.Equal(t, 1, countRows(t, db, "project"), "project created once per title")
	require.Equal(t, 1, countRows(t, db, "tag"), "tag created once per (title, project)")
	require.Equal(t, 2, countRows(t, db, "timeslice"))
}

func TestLedgerRepository_FindOpenSlice(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	// Idle store
	open, err := repo.FindOpenSlice(ctx)
	require.NoError(t, err)
	require.Nil(t, open)

	startedOn := time.Date(2020, 9, 12, 8, 20, 0, 500_000_000, time.UTC)
	created, err := repo.StartSlice(ctx, "website", nil, startedOn, "ext-1")
	require.NoError(t, err)

	open, err = repo.FindOpenSlice(ctx)
	require.NoError(t, err)
	require.NotNil(t, open)
	require.Equal(t, created.ID, open.ID)
	require.Equal(t, "website", open.ProjectTitle)
	require.True(t, open.StartedOn.Equal(startedOn), "sub-second precision survives the round trip")

	// Closing it empties the point query again
	require.NoError(t, repo.CloseSlice(ctx, open.ID, startedOn.Add(time.Hour)))
	open, err = repo.FindOpenSlice(ctx)
	require.NoError(t, err)
	require.Nil(t, open)
}

func TestLedgerRepository_CloseSliceTwice(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	slice, err := repo.StartSlice(ctx, "website", nil, time.Now(), "ext-1")
	require.NoError(t, err)

	stoppedOn := time.Now()
	require.NoError(t, repo.CloseSlice(ctx, slice.ID, stoppedOn))

	// An already-closed slice is not silently overwritten
	err = repo.CloseSlice(ctx, slice.ID, stoppedOn.Add(time.Hour))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLedgerRepository_CloseSliceMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)

	err := repo.CloseSlice(context.Background(), 42, time.Now())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLedgerRepository_ImportFrames(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	base := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)
	frames := []ledger.Frame{
		{
			Project:    "x",
			Tags:       []string{"backend", "admin"},
			StartedOn:  base,
			StoppedOn:  base.Add(2 * time.Hour),
			ExternalID: "frame-1",
		},
		{
			Project:    "x",
			Tags:       []string{"admin", "frontend"},
			StartedOn:  base.Add(3 * time.Hour),
			StoppedOn:  base.Add(4 * time.Hour),
			ExternalID: "frame-2",
		},
	}

	n, err := repo.ImportFrames(ctx, frames)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// One project, the union of tags, two closed slices
	require.Equal(t, 1, countRows(t, db, "project"))
	require.Equal(t, 3, countRows(t, db, "tag"))
	require.Equal(t, 2, countRows(t, db, "timeslice"))
	require.Equal(t, 4, countRows(t, db, "timeslice_tag"))

	open, err := repo.FindOpenSlice(ctx)
	require.NoError(t, err)
	require.Nil(t, open, "imported frames are closed slices")
}

func TestLedgerRepository_ImportFramesEmptyBatch(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)

	n, err := repo.ImportFrames(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, countRows(t, db, "timeslice"))
}
