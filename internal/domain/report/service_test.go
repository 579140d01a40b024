package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/punchcli/punch/internal/domain/report"
	"github.com/punchcli/punch/internal/repository/mocks"
)

func newService(repo report.Repository) *report.Service {
	return report.NewService(repo, nil).WithLocation(time.UTC)
}

func TestReportService_LogGroupsByDay(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2020, 9, 12, 8, 20, 0, 0, time.UTC)
	day2 := time.Date(2020, 9, 13, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: day1, StoppedOn: day1.Add(225 * time.Minute), Tags: []string{"backend", "admin"}},
		{ID: 2, ProjectID: 1, ProjectTitle: "website", StartedOn: day1.Add(7 * time.Hour), StoppedOn: day1.Add(9 * time.Hour)},
		{ID: 3, ProjectID: 2, ProjectTitle: "blog", StartedOn: day2, StoppedOn: day2.Add(time.Hour)},
	}, nil)

	days, err := newService(repo).Log(ctx, report.Filter{})
	require.NoError(t, err)
	require.Len(t, days, 2)

	require.Equal(t, time.Date(2020, 9, 12, 0, 0, 0, 0, time.UTC), days[0].Date)
	require.Len(t, days[0].Entries, 2)
	require.Equal(t, 225*time.Minute, days[0].Entries[0].Duration)
	require.Equal(t, []string{"backend", "admin"}, days[0].Entries[0].Tags)

	require.Equal(t, time.Date(2020, 9, 13, 0, 0, 0, 0, time.UTC), days[1].Date)
	require.Len(t, days[1].Entries, 1)
	require.Equal(t, "blog", days[1].Entries[0].ProjectTitle)
}

func TestReportService_LogBucketsInReportLocation(t *testing.T) {
	ctx := context.Background()
	// 23:30 UTC on the 12th is already the 13th at UTC+2
	stop := time.Date(2020, 9, 12, 23, 30, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: stop.Add(-time.Hour), StoppedOn: stop},
	}, nil)

	zone := time.FixedZone("UTC+2", 2*60*60)
	days, err := report.NewService(repo, nil).WithLocation(zone).Log(ctx, report.Filter{})
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Equal(t, time.Date(2020, 9, 13, 0, 0, 0, 0, zone), days[0].Date)
}

func TestReportService_LogDefaultsFromToEpoch(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, time.Unix(0, 0).UTC()).Return([]report.Slice(nil), nil)

	days, err := newService(repo).Log(ctx, report.Filter{})
	require.NoError(t, err)
	require.Empty(t, days)
	repo.AssertExpectations(t)
}

func TestReportService_LogPassesFromFilter(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2020, 9, 10, 0, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, from).Return([]report.Slice(nil), nil)

	_, err := newService(repo).Log(ctx, report.Filter{From: &from})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReportService_SummarizeByDay(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2020, 10, 7, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		// day1: website 2h (backend 2h), then blog 1h stopping later
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: day1, StoppedOn: day1.Add(2 * time.Hour), Tags: []string{"backend"}},
		{ID: 2, ProjectID: 2, ProjectTitle: "blog", StartedOn: day1.Add(3 * time.Hour), StoppedOn: day1.Add(4 * time.Hour)},
		// day2: website again, two slices summing 3h
		{ID: 3, ProjectID: 1, ProjectTitle: "website", StartedOn: day2, StoppedOn: day2.Add(time.Hour), Tags: []string{"backend"}},
		{ID: 4, ProjectID: 1, ProjectTitle: "website", StartedOn: day2.Add(2 * time.Hour), StoppedOn: day2.Add(4 * time.Hour), Tags: []string{"admin"}},
	}, nil)

	summary, err := newService(repo).Summarize(ctx, report.GroupByDay)
	require.NoError(t, err)
	require.Len(t, summary.Periods, 2)

	// Periods ascending
	require.Equal(t, "2020-10-06", summary.Periods[0].Label)
	require.Equal(t, "2020-10-07", summary.Periods[1].Label)

	// Within a period, projects ordered by most recent stop, descending
	first := summary.Periods[0]
	require.Len(t, first.Projects, 2)
	require.Equal(t, "blog", first.Projects[0].Title)
	require.Equal(t, "website", first.Projects[1].Title)
	require.Equal(t, 2*time.Hour, first.Projects[1].Total)
	require.Equal(t, []report.TagTotal{{Title: "backend", Total: 2 * time.Hour}}, first.Projects[1].Tags)

	// Totals sum per-slice elapsed time, not the group's min/max delta
	second := summary.Periods[1]
	require.Len(t, second.Projects, 1)
	require.Equal(t, 3*time.Hour, second.Projects[0].Total)
	require.Equal(t, []report.TagTotal{
		{Title: "admin", Total: 2 * time.Hour},
		{Title: "backend", Total: time.Hour},
	}, second.Projects[0].Tags)
}

func TestReportService_SummarizeAll(t *testing.T) {
	ctx := context.Background()
	day1 := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2020, 10, 7, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: day1, StoppedOn: day1.Add(time.Hour)},
		{ID: 2, ProjectID: 1, ProjectTitle: "website", StartedOn: day2, StoppedOn: day2.Add(time.Hour)},
	}, nil)

	summary, err := newService(repo).Summarize(ctx, report.GroupAll)
	require.NoError(t, err)
	require.Len(t, summary.Periods, 1)
	require.Equal(t, report.AllPeriodLabel, summary.Periods[0].Label)
	require.Equal(t, 2*time.Hour, summary.Periods[0].Projects[0].Total)
}

func TestReportService_TagTotalsNeverExceedGroupTotal(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: day, StoppedOn: day.Add(time.Hour), Tags: []string{"backend"}},
		{ID: 2, ProjectID: 1, ProjectTitle: "website", StartedOn: day.Add(2 * time.Hour), StoppedOn: day.Add(3 * time.Hour), Tags: []string{"admin"}},
		{ID: 3, ProjectID: 1, ProjectTitle: "website", StartedOn: day.Add(4 * time.Hour), StoppedOn: day.Add(5 * time.Hour)},
	}, nil)

	summary, err := newService(repo).Summarize(ctx, report.GroupByDay)
	require.NoError(t, err)

	for _, period := range summary.Periods {
		for _, project := range period.Projects {
			var tagSum time.Duration
			for _, tag := range project.Tags {
				tagSum += tag.Total
			}
			require.LessOrEqual(t, tagSum, project.Total)
		}
	}
}

func TestReportService_ZeroDurationSliceIsKept(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "website", StartedOn: at, StoppedOn: at},
	}, nil)

	svc := newService(repo)

	days, err := svc.Log(ctx, report.Filter{})
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Equal(t, time.Duration(0), days[0].Entries[0].Duration)

	summary, err := svc.Summarize(ctx, report.GroupByDay)
	require.NoError(t, err)
	require.Len(t, summary.Periods, 1)
	require.Equal(t, time.Duration(0), summary.Periods[0].Projects[0].Total)
}

func TestReportService_CaseSensitiveTitles(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2020, 10, 6, 9, 0, 0, 0, time.UTC)

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice{
		{ID: 1, ProjectID: 1, ProjectTitle: "Website", StartedOn: day, StoppedOn: day.Add(time.Hour)},
		{ID: 2, ProjectID: 2, ProjectTitle: "website", StartedOn: day.Add(2 * time.Hour), StoppedOn: day.Add(3 * time.Hour)},
	}, nil)

	summary, err := newService(repo).Summarize(ctx, report.GroupByDay)
	require.NoError(t, err)
	require.Len(t, summary.Periods[0].Projects, 2, "case-differing titles are distinct projects")
}

func TestReportService_EmptyStore(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ReportRepository{}
	repo.On("ClosedSlices", ctx, mock.Anything).Return([]report.Slice(nil), nil)

	svc := newService(repo)

	days, err := svc.Log(ctx, report.Filter{})
	require.NoError(t, err)
	require.Empty(t, days)

	summary, err := svc.Summarize(ctx, report.GroupAll)
	require.NoError(t, err)
	require.Empty(t, summary.Periods)
}
