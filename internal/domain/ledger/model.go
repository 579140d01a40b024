package ledger

import "time"

// Project is a named container for timeslices. Titles are unique and
// compared case-sensitively.
type Project struct {
	ID    int64
	Title string
}

// Tag is a free-form label scoped to a single project. The same tag text may
// exist independently under different projects.
type Tag struct {
	ID        int64
	Title     string
	ProjectID int64
}

// Timeslice is one recorded interval of work. A nil StoppedOn means the
// slice is currently running; at most one such row exists store-wide.
type Timeslice struct {
	ID         int64
	ProjectID  int64
	StartedOn  time.Time
	StoppedOn  *time.Time
	ExternalID string
}

// OpenSlice is the running slice joined to its project title.
type OpenSlice struct {
	ID           int64
	ProjectTitle string
	StartedOn    time.Time
}

// Frame is one historical interval to import: a closed slice with both
// bounds set, plus the tags to attach.
type Frame struct {
	Project    string
	Tags       []string
	StartedOn  time.Time
	StoppedOn  time.Time
	ExternalID string
}
