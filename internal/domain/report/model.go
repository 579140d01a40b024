package report

import "time"

// Slice is a closed timeslice as read back for reporting, with its tag
// titles already parsed into an ordered list.
type Slice struct {
	ID           int64
	ProjectID    int64
	ProjectTitle string
	StartedOn    time.Time
	StoppedOn    time.Time
	Tags         []string
}

// Filter narrows the log report to a time window over stopped_on. A nil
// From means all time. To is carried for symmetry but the window is
// currently always open-ended.
type Filter struct {
	From *time.Time
	To   *time.Time
}

// Grouping selects the summary bucketing strategy.
type Grouping int

const (
	// GroupByDay buckets slices by the calendar day they stopped on.
	GroupByDay Grouping = iota
	// GroupAll puts every slice into a single all-time bucket.
	GroupAll
)

// Entry is one slice in the log report, with bounds converted to the
// reporting timezone.
type Entry struct {
	StartedOn    time.Time
	StoppedOn    time.Time
	Duration     time.Duration
	ProjectTitle string
	Tags         []string
}

// Day groups log entries by the calendar day they stopped on.
type Day struct {
	Date    time.Time
	Entries []Entry
}

// TagTotal is the total duration booked on one tag within a project-period
// group.
type TagTotal struct {
	Title string
	Total time.Duration
}

// ProjectTotal is the total duration booked on one project within a period,
// with a per-tag breakdown over exactly that group's slices.
type ProjectTotal struct {
	ProjectID int64
	Title     string
	Total     time.Duration
	Tags      []TagTotal
}

// Period is one summary bucket: a calendar day, or the single all-time
// bucket.
type Period struct {
	Label    string
	Projects []ProjectTotal
}

// Summary is the full summary report, periods ascending.
type Summary struct {
	Periods []Period
}
