package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/dashboard"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwork-labs/timetrack-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	dayTotals  dashboard.DayTotals
	weekHours  float64
	seenDay    time.Time
	seenFrom   time.Time
	seenTo     time.Time
	rangeError error
}

func (f *fakeDashboardRepo) GetDayTotals(ctx context.Context, day time.Time) (dashboard.DayTotals, error) {
	f.seenDay = day
	return f.dayTotals, nil
}

func (f *fakeDashboardRepo) GetRangeTotalHours(ctx context.Context, from, to time.Time) (float64, error) {
	f.seenFrom, f.seenTo = from, to
	if f.rangeError != nil {
		return 0, f.rangeError
	}
	return f.weekHours, nil
}

type fakeEntryRepo struct {
	byDate []timeentry.TimeEntry
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
}

func (f *fakeEntryRepo) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	return nil, 0, nil
}

func (f *fakeEntryRepo) ListByDate(ctx context.Context, date time.Time) ([]timeentry.TimeEntry, error) {
	return f.byDate, nil
}

func (f *fakeEntryRepo) ListByRange(ctx context.Context, from, to time.Time, employeeID *int64) ([]timeentry.TimeEntry, error) {
	return nil, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	return entry, nil
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakeEmployeeRepo struct {
	activeCount int64
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, withLastCheckIn bool) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context) (int64, error) {
	return f.activeCount, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestGetStats_ComputesAverages(t *testing.T) {
	repo := &fakeDashboardRepo{
		dayTotals: dashboard.DayTotals{TotalHours: 24.5, CheckedInCount: 2},
		weekHours: 150.0,
	}
	svc := NewDashboardService(repo, &fakeEntryRepo{}, &fakeEmployeeRepo{activeCount: 4})

	// 2024-06-12 is a Wednesday; its week runs from Monday the 10th.
	stats, err := svc.GetStats(context.Background(), day("2024-06-12"))
	require.NoError(t, err)

	assert.Equal(t, 24.5, stats.TotalHours)
	assert.Equal(t, int64(4), stats.ActiveEmployees)
	assert.Equal(t, int64(2), stats.CheckedInCount)
	assert.Equal(t, 6.13, stats.AvgHoursPerEmployee)
	// 150 hours over 4 employees and 5 work days.
	assert.Equal(t, 7.5, stats.WeeklyAvgHours)

	assert.Equal(t, day("2024-06-10"), repo.seenFrom)
	assert.Equal(t, day("2024-06-17"), repo.seenTo)
}

func TestGetStats_ZeroActiveEmployees(t *testing.T) {
	repo := &fakeDashboardRepo{
		dayTotals: dashboard.DayTotals{TotalHours: 8.0, CheckedInCount: 1},
		weekHours: 40.0,
	}
	svc := NewDashboardService(repo, &fakeEntryRepo{}, &fakeEmployeeRepo{activeCount: 0})

	stats, err := svc.GetStats(context.Background(), day("2024-06-12"))
	require.NoError(t, err)

	assert.Equal(t, 8.0, stats.TotalHours)
	assert.Zero(t, stats.AvgHoursPerEmployee)
	assert.Zero(t, stats.WeeklyAvgHours)
}

func TestGetStats_TruncatesTimestampToDay(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, &fakeEntryRepo{}, &fakeEmployeeRepo{activeCount: 1})

	at := time.Date(2024, 6, 12, 14, 35, 0, 0, time.UTC)
	_, err := svc.GetStats(context.Background(), at)
	require.NoError(t, err)

	assert.Equal(t, day("2024-06-12"), repo.seenDay)
}

func TestGetStats_PropagatesQueryError(t *testing.T) {
	repo := &fakeDashboardRepo{rangeError: errors.New("connection reset")}
	svc := NewDashboardService(repo, &fakeEntryRepo{}, &fakeEmployeeRepo{activeCount: 1})

	_, err := svc.GetStats(context.Background(), day("2024-06-12"))
	assert.Error(t, err)
}

func TestGetDashboard_PairsEntriesWithStats(t *testing.T) {
	checkout := "17:00"
	total := 7.0
	entries := []timeentry.TimeEntry{
		{ID: 1, EmployeeID: 1, Date: day("2024-06-12"), CheckInTime: "09:00", CheckOutTime: &checkout, TotalHours: &total},
		{ID: 2, EmployeeID: 2, Date: day("2024-06-12"), CheckInTime: "10:00"},
	}
	repo := &fakeDashboardRepo{
		dayTotals: dashboard.DayTotals{TotalHours: 7.0, CheckedInCount: 1},
		weekHours: 35.0,
	}
	svc := NewDashboardService(repo, &fakeEntryRepo{byDate: entries}, &fakeEmployeeRepo{activeCount: 2})

	resp, err := svc.GetDashboard(context.Background(), day("2024-06-12"))
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, int64(1), resp.Entries[0].ID)
	assert.Nil(t, resp.Entries[1].CheckOutTime)
	assert.Equal(t, 7.0, resp.Stats.TotalHours)
	assert.Equal(t, int64(1), resp.Stats.CheckedInCount)
	assert.Equal(t, 3.5, resp.Stats.AvgHoursPerEmployee)
}
