package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"
)

// AllPeriodLabel labels the single bucket of an all-time summary.
const AllPeriodLabel = "All"

const dayKeyLayout = "2006-01-02"

// Service builds log and summary reports over closed timeslices. Day
// bucketing uses the configured location; persisted instants are only
// converted at report time.
type Service struct {
	repo   Repository
	logger *slog.Logger
	loc    *time.Location
}

// NewService creates a new report service bucketing days in local time.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, logger: logger, loc: time.Local}
}

// WithLocation returns a copy of the service bucketing days in loc.
func (s *Service) WithLocation(loc *time.Location) *Service {
	out := *s
	out.loc = loc
	return &out
}

// Log returns closed slices grouped by the calendar day of stopped_on, days
// ascending. An empty store yields an empty report.
func (s *Service) Log(ctx context.Context, filter Filter) ([]Day, error) {
	from := time.Unix(0, 0).UTC()
	if filter.From != nil {
		from = *filter.From
	}

	slices, err := s.repo.ClosedSlices(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("loading closed slices: %w", err)
	}

	var days []Day
	for _, slice := range slices {
		stopped := slice.StoppedOn.In(s.loc)
		date := time.Date(stopped.Year(), stopped.Month(), stopped.Day(), 0, 0, 0, 0, s.loc)

		entry := Entry{
			StartedOn:    slice.StartedOn.In(s.loc),
			StoppedOn:    stopped,
			Duration:     slice.StoppedOn.Sub(slice.StartedOn),
			ProjectTitle: slice.ProjectTitle,
			Tags:         slice.Tags,
		}

		// Slices arrive stopped_on-ascending, so a new day always opens a
		// new group at the end.
		if len(days) == 0 || !days[len(days)-1].Date.Equal(date) {
			days = append(days, Day{Date: date})
		}
		days[len(days)-1].Entries = append(days[len(days)-1].Entries, entry)
	}

	return days, nil
}

// Summarize returns total durations grouped by period and project, with a
// per-tag breakdown inside each project-period group. Totals are sums of
// per-slice elapsed time, never the delta of a group's extremes.
func (s *Service) Summarize(ctx context.Context, mode Grouping) (*Summary, error) {
	slices, err := s.repo.ClosedSlices(ctx, time.Unix(0, 0).UTC())
	if err != nil {
		return nil, fmt.Errorf("loading closed slices: %w", err)
	}

	type groupKey struct {
		period    string
		projectID int64
	}
	type group struct {
		title       string
		total       time.Duration
		lastStopped time.Time
		tags        map[string]time.Duration
	}

	groups := make(map[groupKey]*group)
	for _, slice := range slices {
		period := AllPeriodLabel
		if mode == GroupByDay {
			period = slice.StoppedOn.In(s.loc).Format(dayKeyLayout)
		}

		key := groupKey{period: period, projectID: slice.ProjectID}
		g, ok := groups[key]
		if !ok {
			g = &group{title: slice.ProjectTitle, tags: make(map[string]time.Duration)}
			groups[key] = g
		}

		elapsed := slice.StoppedOn.Sub(slice.StartedOn)
		g.total += elapsed
		if slice.StoppedOn.After(g.lastStopped) {
			g.lastStopped = slice.StoppedOn
		}
		for _, tag := range slice.Tags {
			g.tags[tag] += elapsed
		}
	}

	byPeriod := make(map[string][]ProjectTotal)
	lastStopped := make(map[string]map[int64]time.Time)
	for key, g := range groups {
		tags := make([]TagTotal, 0, len(g.tags))
		for title, total := range g.tags {
			tags = append(tags, TagTotal{Title: title, Total: total})
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i].Title < tags[j].Title })

		byPeriod[key.period] = append(byPeriod[key.period], ProjectTotal{
			ProjectID: key.projectID,
			Title:     g.title,
			Total:     g.total,
			Tags:      tags,
		})
		if lastStopped[key.period] == nil {
			lastStopped[key.period] = make(map[int64]time.Time)
		}
		lastStopped[key.period][key.projectID] = g.lastStopped
	}

	labels := make([]string, 0, len(byPeriod))
	for label := range byPeriod {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	summary := &Summary{}
	for _, label := range labels {
		projects := byPeriod[label]
		recency := lastStopped[label]
		sort.Slice(projects, func(i, j int) bool {
			return recency[projects[i].ProjectID].After(recency[projects[j].ProjectID])
		})
		summary.Periods = append(summary.Periods, Period{Label: label, Projects: projects})
	}

	return summary, nil
}
