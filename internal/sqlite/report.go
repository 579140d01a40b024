package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/punchcli/punch/internal/domain/report"
)

// ReportRepository implements report.Repository for SQLite
type ReportRepository struct {
	db *DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ClosedSlices returns all closed slices with stopped_on >= from, joined to
// their project and tags, ordered by stopped_on ascending. Tag titles come
// back from SQLite as one concatenated column; they are parsed into a list
// here, once, and the joined string never leaves this package.
func (r *ReportRepository) ClosedSlices(ctx context.Context, from time.Time) ([]report.Slice, error) {
	query := `
		SELECT
			t.timeslice_id,
			t.project_id,
			p.title,
			t.started_on,
			t.stopped_on,
			COALESCE(group_concat(tag.title ORDER BY tag.tag_id), '')
		FROM timeslice t
		JOIN project p USING (project_id)
		LEFT JOIN timeslice_tag tt ON tt.timeslice_id = t.timeslice_id
		LEFT JOIN tag ON tag.tag_id = tt.tag_id
		WHERE t.stopped_on IS NOT NULL AND t.stopped_on >= ?
		GROUP BY t.timeslice_id
		ORDER BY t.stopped_on ASC, t.timeslice_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, formatTime(from))
	if err != nil {
		return nil, fmt.Errorf("failed to query closed slices: %w", err)
	}
	defer rows.Close()

	var slices []report.Slice
	for rows.Next() {
		var (
			slice     report.Slice
			startedOn string
			stoppedOn string
			tagList   string
		)
		if err := rows.Scan(&slice.ID, &slice.ProjectID, &slice.ProjectTitle,
			&startedOn, &stoppedOn, &tagList); err != nil {
			return nil, fmt.Errorf("failed to scan closed slice: %w", err)
		}

		if slice.StartedOn, err = parseTime(startedOn); err != nil {
			return nil, err
		}
		if slice.StoppedOn, err = parseTime(stoppedOn); err != nil {
			return nil, err
		}
		slice.Tags = splitTagList(tagList)

		slices = append(slices, slice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closed slices: %w", err)
	}

	return slices, nil
}

func splitTagList(tagList string) []string {
	if tagList == "" {
		return nil
	}
	return strings.Split(tagList, ",")
}
