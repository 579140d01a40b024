package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/punchcli/punch/internal/domain/ledger"
	"github.com/punchcli/punch/internal/domain/report"
)

// LedgerRepository is a mock for ledger.Repository.
type LedgerRepository struct {
	mock.Mock
}

func (m *LedgerRepository) FindOpenSlice(ctx context.Context) (*ledger.OpenSlice, error) {
	args := m.Called(ctx)
	if slice, ok := args.Get(0).(*ledger.OpenSlice); ok {
		return slice, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LedgerRepository) StartSlice(ctx context.Context, projectTitle string, tags []string, startedOn time.Time, externalID string) (*ledger.OpenSlice, error) {
	args := m.Called(ctx, projectTitle, tags, startedOn, externalID)
	if slice, ok := args.Get(0).(*ledger.OpenSlice); ok {
		return slice, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LedgerRepository) CloseSlice(ctx context.Context, id int64, stoppedOn time.Time) error {
	args := m.Called(ctx, id, stoppedOn)
	return args.Error(0)
}

func (m *LedgerRepository) ImportFrames(ctx context.Context, frames []ledger.Frame) (int, error) {
	args := m.Called(ctx, frames)
	return args.Int(0), args.Error(1)
}

// ReportRepository is a mock for report.Repository.
type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) ClosedSlices(ctx context.Context, from time.Time) ([]report.Slice, error) {
	args := m.Called(ctx, from)
	if slices, ok := args.Get(0).([]report.Slice); ok {
		return slices, args.Error(1)
	}
	return nil, args.Error(1)
}
