package report

import (
	"context"
	"time"
)

// Repository provides read access to closed timeslices.
type Repository interface {
	// ClosedSlices returns all closed slices with stopped_on >= from,
	// ordered by stopped_on ascending.
	ClosedSlices(ctx context.Context, from time.Time) ([]Slice, error)
}
