package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is the time-ledger state machine. It is Idle when no slice is
// open and Running otherwise; the state lives in the store, not in memory,
// so it survives process restarts.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new ledger service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// StartResult holds the outcome of a start request.
type StartResult struct {
	Slice OpenSlice
	// AlreadyRunning is true when a slice was already open; in that case no
	// writes were performed and Slice is the pre-existing one.
	AlreadyRunning bool
}

// StopResult holds the outcome of a stop request.
type StopResult struct {
	// Stopped is false when there was no running slice to stop.
	Stopped      bool
	ProjectTitle string
	StartedOn    time.Time
	StoppedOn    time.Time
	Duration     time.Duration
}

// Start opens a new slice for the named project with the given tags. When a
// slice is already running it reports that slice instead of starting a new
// one, without touching the store.
func (s *Service) Start(ctx context.Context, project string, tags []string) (*StartResult, error) {
	if strings.TrimSpace(project) == "" {
		return nil, fmt.Errorf("%w: project name must not be blank", ErrInvalidInput)
	}

	open, err := s.repo.FindOpenSlice(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking for open slice: %w", err)
	}
	if open != nil {
		s.logger.Debug("slice already running",
			"project", open.ProjectTitle, "started_on", open.StartedOn)
		return &StartResult{Slice: *open, AlreadyRunning: true}, nil
	}

	slice, err := s.repo.StartSlice(ctx, project, tags, s.now(), uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("starting slice: %w", err)
	}

	s.logger.Debug("slice started",
		"id", slice.ID, "project", slice.ProjectTitle, "tags", tags)
	return &StartResult{Slice: *slice}, nil
}

// Stop closes the running slice. When no slice is running it reports that
// without touching the store.
func (s *Service) Stop(ctx context.Context) (*StopResult, error) {
	open, err := s.repo.FindOpenSlice(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking for open slice: %w", err)
	}
	if open == nil {
		return &StopResult{}, nil
	}

	stoppedOn := s.now()
	if err := s.repo.CloseSlice(ctx, open.ID, stoppedOn); err != nil {
		return nil, fmt.Errorf("closing slice: %w", err)
	}

	s.logger.Debug("slice stopped", "id", open.ID, "project", open.ProjectTitle)
	return &StopResult{
		Stopped:      true,
		ProjectTitle: open.ProjectTitle,
		StartedOn:    open.StartedOn,
		StoppedOn:    stoppedOn,
		Duration:     stoppedOn.Sub(open.StartedOn),
	}, nil
}

// Status returns the running slice, or nil when the ledger is idle.
func (s *Service) Status(ctx context.Context) (*OpenSlice, error) {
	open, err := s.repo.FindOpenSlice(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking for open slice: %w", err)
	}
	return open, nil
}

// Import validates and stores a batch of historical frames.
func (s *Service) Import(ctx context.Context, frames []Frame) (int, error) {
	for i, f := range frames {
		if strings.TrimSpace(f.Project) == "" {
			return 0, fmt.Errorf("%w: frame %d has a blank project name", ErrInvalidInput, i)
		}
		if f.StoppedOn.Before(f.StartedOn) {
			return 0, fmt.Errorf("%w: frame %d stops before it starts", ErrInvalidInput, i)
		}
	}

	n, err := s.repo.ImportFrames(ctx, frames)
	if err != nil {
		return 0, fmt.Errorf("importing frames: %w", err)
	}

	s.logger.Debug("frames imported", "count", n)
	return n, nil
}
